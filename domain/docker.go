package domain

type DockerContainerEnv map[string]string

// Get returns the value for key, or fallback when the container does
// not define it.
func (e DockerContainerEnv) Get(key, fallback string) string {
	if value, ok := e[key]; ok {
		return value
	}
	return fallback
}

type DockerContainerConfig struct {
	Image string
	Env   DockerContainerEnv
}
