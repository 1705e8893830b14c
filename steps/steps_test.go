package steps

import (
	"errors"
	"io/ioutil"
	"testing"

	"webup/flowup/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertFileContains(t *testing.T, path string, needle string) {
	t.Helper()
	content, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), needle)
}

func TestSequenceOrder(t *testing.T) {
	sequence := Sequence(proxyTestConfig(), &fakeRunner{})

	var names []string
	for _, step := range sequence {
		names = append(names, step.Name)
	}

	assert.Equal(t, []string{
		"Update system packages",
		"Configure firewall",
		"Install docker engine",
		"Generate configuration files",
		"Start containers",
		"Wait for n8n to answer",
		"Configure reverse proxy",
		"Request TLS certificate",
		"Verify containers",
	}, names)
}

func TestOnlyProxyAndCertificateStepsAreNonFatal(t *testing.T) {
	for _, step := range Sequence(proxyTestConfig(), &fakeRunner{}) {
		switch step.Name {
		case "Configure reverse proxy", "Request TLS certificate":
			assert.True(t, step.Warn, step.Name)
		default:
			assert.False(t, step.Warn, step.Name)
		}
	}
}

func TestFirewallAppliesDefaultDenyPolicy(t *testing.T) {
	runner := &fakeRunner{}

	require.NoError(t, Firewall(runner).Run())

	assert.Equal(t, []string{
		"ufw --force reset",
		"ufw default deny incoming",
		"ufw default allow outgoing",
		"ufw allow OpenSSH",
		"ufw allow Nginx Full",
		"ufw --force enable",
	}, runner.commands)
}

func TestFirewallStopsAtFirstFailedRule(t *testing.T) {
	runner := &fakeRunner{
		failures: map[string]error{"ufw default deny incoming": errors.New("exit status 1")},
	}

	err := Firewall(runner).Run()

	assert.Error(t, err)
	assert.Equal(t, []string{"ufw --force reset", "ufw default deny incoming"}, runner.commands)
}

func TestSystemUpdateRunsNonInteractively(t *testing.T) {
	cmd := aptCommand("upgrade", "-y")

	assert.Contains(t, cmd.Env, "DEBIAN_FRONTEND=noninteractive")
}

func TestRequestCertificateWrapsFailure(t *testing.T) {
	certbot := "certbot --nginx -d demo.example.org --non-interactive --agree-tos --register-unsafely-without-email --redirect"
	runner := &fakeRunner{
		failures: map[string]error{certbot: errors.New("exit status 1")},
	}

	err := RequestCertificate(proxyTestConfig(), runner).Run()

	var certErr *domain.CertificateAcquisitionError
	require.True(t, errors.As(err, &certErr))
	assert.Equal(t, "demo.example.org", certErr.Host)
	// nginx must not be reloaded when certbot failed
	assert.False(t, runner.ran("nginx -t"))
}

func TestRequestCertificateValidatesBeforeFinalReload(t *testing.T) {
	runner := &fakeRunner{}

	require.NoError(t, RequestCertificate(proxyTestConfig(), runner).Run())

	assert.Equal(t, []string{
		"certbot --nginx -d demo.example.org --non-interactive --agree-tos --register-unsafely-without-email --redirect",
		"nginx -t",
		"systemctl reload nginx",
	}, runner.commands)
}

func TestVerifyDeploymentGrepsForRunningMarker(t *testing.T) {
	ps := "docker compose --project-directory /opt/n8n ps n8n"

	running := &fakeRunner{outputs: map[string]string{ps: "n8n   n8nio/n8n   running"}}
	require.NoError(t, VerifyDeployment(proxyTestConfig(), running).Run())

	stopped := &fakeRunner{outputs: map[string]string{ps: "n8n   n8nio/n8n   exited (1)"}}
	assert.Error(t, VerifyDeployment(proxyTestConfig(), stopped).Run())
}

func TestGenerateArtifactsOverwritesFiles(t *testing.T) {
	cfg := proxyTestConfig()
	cfg.InstallDir = t.TempDir()

	require.NoError(t, GenerateArtifacts(cfg).Run())

	// a second run with rotated secrets fully replaces the files
	rotated := cfg
	rotated.DBPassword = "rotated-db"
	rotated.AppPassword = "rotated-app"
	require.NoError(t, GenerateArtifacts(rotated).Run())

	assertFileContains(t, cfg.InstallDir+"/.env", "POSTGRES_PASSWORD=rotated-db")
	assertFileContains(t, cfg.InstallDir+"/docker-compose.yml", "127.0.0.1:5678:5678")
}
