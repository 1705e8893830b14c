package main

import (
	"fmt"
	"os"

	"webup/flowup/actions"
	"webup/flowup/config"
	"webup/flowup/domain"

	"github.com/jawher/mow.cli"
)

func main() {

	app := cli.App("flowup", "Provision a production n8n host")

	app.Version("v version", "Flowup 1 (build 1)")

	configPath := app.String(cli.StringOpt{
		Name:  "c config",
		Value: config.DefaultFilename,
		Desc:  "Path to an optional yaml file overriding the compiled-in defaults",
	})

	assumeYes := app.Bool(cli.BoolOpt{
		Name:  "y yes",
		Value: false,
		Desc:  "Skip confirmation prompts",
	})

	var cfg domain.DeploymentConfig

	app.Before = func() {
		resolved, err := config.Resolve(*configPath)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
			return
		}
		cfg = resolved
	}

	app.Command("deploy", "Run the full provisioning sequence (packages, firewall, docker, n8n, nginx, TLS)", func(cmd *cli.Cmd) {
		cmd.Action = func() {
			if err := actions.DeployActionHandler(cfg, *assumeYes); err != nil {
				cli.Exit(1)
			}
		}
	})

	app.Command("status", "Show the containers state and probe n8n", func(cmd *cli.Cmd) {
		cmd.Action = func() {
			if err := actions.StatusActionHandler(cfg); err != nil {
				cli.Exit(1)
			}
		}
	})

	app.Command("logs", "Follow logs of all services (or the specified service)", func(cmd *cli.Cmd) {

		cmd.Spec = "[SERVICE]"
		service := cmd.StringArg("SERVICE", "", "The Compose service to log")

		cmd.Action = func() {
			args := []string{"logs", "-f"}
			if *service != "" {
				args = append(args, *service)
			}

			cmd := domain.NewComposeCommand(args, cfg.InstallDir)
			if err := cmd.Execute(); err != nil {
				cli.Exit(1)
			}
		}
	})

	app.Command("restart", "Restart the containers", func(cmd *cli.Cmd) {
		cmd.Action = func() {
			cmd := domain.NewComposeCommand([]string{"restart"}, cfg.InstallDir)
			if err := cmd.Execute(); err != nil {
				cli.Exit(1)
			}
		}
	})

	app.Command("update", "Pull new images and recreate the containers", func(cmd *cli.Cmd) {
		cmd.Action = func() {
			pull := domain.NewComposeCommand([]string{"pull"}, cfg.InstallDir)
			if err := pull.Execute(); err != nil {
				cli.Exit(1)
				return
			}

			up := domain.NewComposeCommand([]string{"up", "-d"}, cfg.InstallDir)
			if err := up.Execute(); err != nil {
				cli.Exit(1)
			}
		}
	})

	app.Command("backup", "Archive the generated config files and the database", func(cmd *cli.Cmd) {

		cmd.Spec = "[--db] [-o] [--encrypt]"
		dbOpt := cmd.BoolOpt("db", false, "Dump the n8n database without asking")
		output := cmd.StringOpt("o output", "", "Name of the backup archive")
		passphrase := cmd.StringOpt("encrypt", "", "Encrypt the archive with this passphrase")

		cmd.Action = func() {
			var db *bool
			if *dbOpt {
				db = dbOpt
			}

			if err := actions.BackupActionHandler(cfg, db, output, *passphrase); err != nil {
				fmt.Println(err)
				cli.Exit(1)
			}
		}
	})

	app.Command("restore", "Restore config files and database from a backup archive", func(cmd *cli.Cmd) {

		cmd.Spec = "ARCHIVE [--config-files] [--db] [--encrypt]"
		archive := cmd.StringArg("ARCHIVE", "", "The backup archive to restore from")
		configFilesOpt := cmd.BoolOpt("config-files", false, "Restore the generated config files without asking")
		dbOpt := cmd.BoolOpt("db", false, "Restore the database dump without asking")
		passphrase := cmd.StringOpt("encrypt", "", "Decrypt the archive with this passphrase")

		cmd.Action = func() {
			var configFiles, db *bool
			if *configFilesOpt {
				configFiles = configFilesOpt
			}
			if *dbOpt {
				db = dbOpt
			}

			if err := actions.RestoreActionHandler(cfg, *archive, configFiles, db, *passphrase); err != nil {
				fmt.Println(err)
				cli.Exit(1)
			}
		}
	})

	app.Run(os.Args)
}
