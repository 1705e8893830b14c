package artifacts

import (
	"fmt"
	"strings"

	"webup/flowup/domain"
)

// NginxSite renders the HTTP-only virtual host (stage A). Certbot
// later rewrites this file in place to add TLS termination and the
// HTTP redirect (stage B); flowup never generates those directives
// itself.
//
// The connection upgrade headers keep n8n's push channel working, and
// the 60s timeouts tolerate slow workflow executions.
func NginxSite(cfg domain.DeploymentConfig) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, `server {
    listen 80;
    server_name %s;

    location / {
        proxy_pass http://127.0.0.1:%d;
        proxy_http_version 1.1;
        proxy_set_header Upgrade $http_upgrade;
        proxy_set_header Connection "upgrade";
        proxy_set_header Host $host;
        proxy_set_header X-Real-IP $remote_addr;
        proxy_set_header X-Forwarded-For $proxy_add_x_forwarded_for;
        proxy_set_header X-Forwarded-Proto $scheme;
        proxy_set_header X-Forwarded-Host $host;
        proxy_set_header X-Forwarded-Port $server_port;
        proxy_connect_timeout 60s;
        proxy_send_timeout 60s;
        proxy_read_timeout 60s;
    }
}
`, cfg.TargetHost, domain.AppPort)

	return []byte(b.String())
}
