package config

// overrideSpec mirrors the optional flowup.yml file. Empty fields keep
// the compiled-in default.
type overrideSpec struct {
	TargetHost string `yaml:"target_host"`
	AdminUser  string `yaml:"admin_user"`
	InstallDir string `yaml:"install_dir"`
}
