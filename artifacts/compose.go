package artifacts

import (
	"fmt"
	"strings"

	"webup/flowup/domain"
)

// ComposeFile renders the two-service compose file: a postgres service
// gated by a readiness healthcheck, and the n8n service published on
// the loopback interface only so that nginx is the single public
// entry point. Both services keep their data in named volumes and
// talk over a private bridge network.
func ComposeFile(cfg domain.DeploymentConfig) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, `services:
  %s:
    image: postgres:16-alpine
    restart: unless-stopped
    environment:
      - POSTGRES_DB=${POSTGRES_DB}
      - POSTGRES_USER=${POSTGRES_USER}
      - POSTGRES_PASSWORD=${POSTGRES_PASSWORD}
    volumes:
      - db_data:/var/lib/postgresql/data
    networks:
      - n8n_net
    healthcheck:
      test: ["CMD-SHELL", "pg_isready -U ${POSTGRES_USER} -d ${POSTGRES_DB}"]
      interval: 5s
      timeout: 5s
      retries: 10

  %s:
    image: n8nio/n8n
    restart: unless-stopped
    depends_on:
      %s:
        condition: service_healthy
    ports:
      - "127.0.0.1:%d:%d"
    environment:
      - DB_TYPE=postgresdb
      - DB_POSTGRESDB_HOST=%s
      - DB_POSTGRESDB_PORT=5432
      - DB_POSTGRESDB_DATABASE=${POSTGRES_DB}
      - DB_POSTGRESDB_USER=${POSTGRES_USER}
      - DB_POSTGRESDB_PASSWORD=${POSTGRES_PASSWORD}
      - N8N_BASIC_AUTH_ACTIVE=${N8N_BASIC_AUTH_ACTIVE}
      - N8N_BASIC_AUTH_USER=${N8N_BASIC_AUTH_USER}
      - N8N_BASIC_AUTH_PASSWORD=${N8N_BASIC_AUTH_PASSWORD}
      - N8N_HOST=${N8N_HOST}
      - N8N_PROTOCOL=${N8N_PROTOCOL}
      - N8N_PORT=${N8N_PORT}
      - WEBHOOK_URL=${WEBHOOK_URL}
      - GENERIC_TIMEZONE=${GENERIC_TIMEZONE}
      - N8N_USER_MANAGEMENT_DISABLED=${N8N_USER_MANAGEMENT_DISABLED}
      - N8N_PERSONALIZATION_ENABLED=${N8N_PERSONALIZATION_ENABLED}
    volumes:
      - n8n_data:/home/node/.n8n
    networks:
      - n8n_net

volumes:
  db_data:
  n8n_data:

networks:
  n8n_net:
    driver: bridge
`,
		domain.DBService,
		domain.AppService,
		domain.DBService,
		domain.AppPort, domain.AppPort,
		domain.DBService,
	)

	return []byte(b.String())
}
