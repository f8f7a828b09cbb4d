package config

// Modbfile represents the structure of the modb.yaml configuration file.
type Modbfile struct {
	Version      string   `yaml:"version"`
	AppDir       string   `yaml:"appDir"`
	Applications []string `yaml:"applications"`
}
