package source

// FileSet holds every file loaded during a run, keyed by name, so
// diagnostic rendering can get back at source lines.
type FileSet struct {
	files map[string]*File
}

// NewFileSet returns an empty set.
func NewFileSet() *FileSet {
	return &FileSet{files: make(map[string]*File)}
}

// Add registers f, replacing any file with the same name.
func (fs *FileSet) Add(f *File) {
	fs.files[f.Name] = f
}

// Get returns the file registered under name, or nil.
func (fs *FileSet) Get(name string) *File {
	return fs.files[name]
}

// Len returns the number of registered files.
func (fs *FileSet) Len() int {
	return len(fs.files)
}
