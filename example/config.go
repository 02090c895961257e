package main

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Profile holds the default connection settings of the example.
type Profile struct {
	Host           string `yaml:"host"`
	HostIP         string `yaml:"host_ip"`
	PortTcp        int    `yaml:"port_tcp"`
	PortUdp        int    `yaml:"port_udp"`
	ConnectTimeout int    `yaml:"connect_timeout"`
	ReadTimeout    int    `yaml:"read_timeout"`
	RetryInterval  int    `yaml:"retry_interval"`
	AutoRetry      bool   `yaml:"auto_retry"`
	Eop            string `yaml:"eop"`
	Trace          string `yaml:"trace"`
	Language       string `yaml:"language"`
}

// DefaultProfilePath returns ~/.gxcomm/profile.yaml.
func DefaultProfilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".gxcomm", "profile.yaml")
	}
	return filepath.Join(home, ".gxcomm", "profile.yaml")
}

// LoadProfile reads the profile from path.
// If the file does not exist, the defaults are returned with no error.
func LoadProfile(path string) (*Profile, error) {
	p := &Profile{
		Host:           "127.0.0.1",
		ConnectTimeout: 1000,
		ReadTimeout:    1000,
		RetryInterval:  1000,
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, err
	}
	return p, nil
}
