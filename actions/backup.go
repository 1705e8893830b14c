package actions

import (
	"fmt"
	"io/ioutil"
	"os"
	"path"
	"path/filepath"
	"time"

	"webup/flowup/artifacts"
	"webup/flowup/domain"
	"webup/flowup/utils"

	"github.com/Songmu/prompter"
	"github.com/fatih/color"
	"github.com/jhoonb/archivex"
)

// BackupActionHandler archives the generated config files and a dump
// of the n8n database. Rerunning 'flowup deploy' rotates credentials,
// so a backup taken beforehand is the only way to keep the previous
// ones.
func BackupActionHandler(cfg domain.DeploymentConfig, backupDBOpt *bool, outputOpt *string, passphrase string) error {

	backupDB := false
	if backupDBOpt == nil {
		backupDB = prompter.YN("Dump the n8n database?", true)
	} else {
		backupDB = *backupDBOpt
	}

	fmt.Println("")

	// prepare the directory to store the backup
	backupDir := ".flowup_backup"
	err := os.Mkdir(backupDir, os.ModePerm)
	if err != nil {
		return fmt.Errorf("Unable to create a backup directory: %s", err)
	}
	defer os.RemoveAll(backupDir)

	// generated config files
	configDir := path.Join(backupDir, "backup", "config")
	os.MkdirAll(configDir, 0755)
	for _, name := range []string{artifacts.EnvFilename, artifacts.ComposeFilename} {
		source := filepath.Join(cfg.InstallDir, name)
		if _, err := os.Stat(source); err != nil {
			return fmt.Errorf("Unable to backup a config file: %s", err)
		}
		if err := os.Link(source, path.Join(configDir, name)); err != nil {
			return fmt.Errorf("Unable to backup a config file: %s", err)
		}
	}

	if backupDB {
		dbDir := path.Join(backupDir, "backup", "databases")
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			return fmt.Errorf("Unable to create the db backup directory: %s", err)
		}
		if err := makeDump(cfg, dbDir); err != nil {
			return fmt.Errorf("Unable to backup the database: %s", err)
		}
	}

	tar := new(archivex.TarFile)
	tar.Create(path.Join(backupDir, "backup_archive.tar.gz"))
	tar.AddAll(path.Join(backupDir, "backup"), false)
	tar.Close()

	// save the archive with the right name
	archiveFilename := ""
	if outputOpt != nil && *outputOpt != "" {
		archiveFilename = *outputOpt
	} else {
		now := time.Now().UTC()
		year, month, day := now.Date()
		hour, minutes, seconds := now.Clock()
		archiveFilename = fmt.Sprintf("backup-%d%02d%02d_%02d%02d%02d.tar.gz", year, month, day, hour, minutes, seconds)
	}

	archivePath := path.Join(backupDir, "backup_archive.tar.gz")

	if passphrase != "" {
		if err := encryptArchive(archivePath, archiveFilename+".enc", passphrase); err != nil {
			return fmt.Errorf("Unable to encrypt the backup file: %s", err)
		}
		fmt.Printf("\n %s Done (%s)\n", color.GreenString("✓"), archiveFilename+".enc")
		return nil
	}

	if err := os.Rename(archivePath, archiveFilename); err != nil {
		return fmt.Errorf("Unable to create the backup file: %s", err)
	}

	fmt.Printf("\n %s Done (%s)\n", color.GreenString("✓"), archiveFilename)
	return nil
}

func makeDump(cfg domain.DeploymentConfig, backupDir string) error {

	// fetch the container id for the db service
	containerID, err := utils.GetContainerID(domain.DBService, cfg.InstallDir)
	if err != nil {
		return err
	}
	if containerID == "" {
		return fmt.Errorf("the '%s' container is not running", domain.DBService)
	}

	// read database name/user from the running container instead of
	// parsing .env
	containerConfig, err := utils.GetContainerConfig(containerID)
	if err != nil {
		return err
	}

	user := containerConfig.Env.Get("POSTGRES_USER", "n8n")
	database := containerConfig.Env.Get("POSTGRES_DB", "n8n")

	cmd := domain.NewCommand([]string{"docker", "exec", "-i", containerID, "pg_dump", "-U", user, database})

	file, err := ioutil.TempFile(backupDir, "flowupdump")
	if err != nil {
		fmt.Println("Unable to create a tmp file:")
		return err
	}
	defer file.Close()

	if err := cmd.WriteResultToFile(file); err != nil {
		os.Remove(file.Name())
		return err
	}

	return os.Rename(file.Name(), path.Join(backupDir, database+".sql"))
}

func encryptArchive(source string, destination string, passphrase string) error {
	in, err := os.Open(source)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(destination)
	if err != nil {
		return err
	}
	defer out.Close()

	return utils.Encrypt(in, out, []byte(passphrase))
}
