package utils

import (
	"encoding/json"
	"strings"

	"webup/flowup/domain"
)

type containerParsedConfig struct {
	Env   []string
	Image string
}

// GetContainerID resolves a compose service name to a container id.
func GetContainerID(service string, projectDir string) (string, error) {
	cmd := domain.NewComposeCommand([]string{"ps", "-q", service}, projectDir)
	return cmd.GetResult()
}

// GetContainerConfig reads the image and environment of a running
// container. Used by backup/restore to recover database credentials
// without parsing the .env file.
func GetContainerConfig(containerID string) (domain.DockerContainerConfig, error) {
	cmd := domain.NewCommand([]string{"docker", "inspect", "--format", "{{json .Config}}", containerID})
	configJSON, err := cmd.GetResult()
	if err != nil {
		return domain.DockerContainerConfig{}, err
	}

	var config containerParsedConfig
	if err := json.NewDecoder(strings.NewReader(configJSON)).Decode(&config); err != nil {
		return domain.DockerContainerConfig{}, err
	}

	env := domain.DockerContainerEnv{}
	for _, data := range config.Env {
		items := strings.SplitN(data, "=", 2)
		if len(items) == 2 {
			env[items[0]] = items[1]
		}
	}

	return domain.DockerContainerConfig{
		Image: config.Image,
		Env:   env,
	}, nil
}
