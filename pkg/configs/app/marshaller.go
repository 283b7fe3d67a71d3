package app

import (
	"os"

	"gopkg.in/yaml.v3"
)

func LoadConfig(filepath string) (*Config, error) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}
	return Unmarshal(content)
}

func Unmarshal(conf []byte) (*Config, error) {
	var out Config
	if err := yaml.Unmarshal(conf, &out); err != nil {
		return nil, err
	}
	if err := out.complete(); err != nil {
		return nil, err
	}
	return &out, nil
}
