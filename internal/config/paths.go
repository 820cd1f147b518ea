package config

// Paths holds the resolved directories for one run.
type Paths struct {
	ConfigDir   string `json:"config_dir"`
	ConfigFile  string `json:"config_file,omitempty"`
	TemplateDir string `json:"template_dir"`
	CacheDir    string `json:"cache_dir"`
}

// Resolve loads the config file and resolves every directory from the
// environment, the file, and the defaults, in that order.
func Resolve() (Paths, *File, error) {
	file, err := LoadFile(FilePath())
	if err != nil {
		return Paths{}, nil, err
	}

	return Paths{
		ConfigDir:   Dir(),
		ConfigFile:  file.Path,
		TemplateDir: TemplateDir(file),
		CacheDir:    CacheDir(file),
	}, file, nil
}
