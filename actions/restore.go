package actions

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"webup/flowup/domain"
	"webup/flowup/utils"

	"github.com/Songmu/prompter"
	"github.com/fatih/color"
)

// RestoreActionHandler restores the generated config files and/or a
// database dump from a backup archive produced by 'flowup backup'.
func RestoreActionHandler(cfg domain.DeploymentConfig, file string, restoreConfigFilesOpt *bool, restoreDBOpt *bool, passphrase string) error {

	isQuiet := restoreConfigFilesOpt != nil || restoreDBOpt != nil

	if !isQuiet {
		fmt.Printf(" %s ️ Choose what you want to restore:\n", color.YellowString("▶"))
	}

	configFilesRestoration := false
	if restoreConfigFilesOpt == nil {
		configFilesRestoration = prompter.YN("     - configuration files", false)
	} else {
		configFilesRestoration = *restoreConfigFilesOpt
	}

	dbRestoration := false
	if restoreDBOpt == nil {
		dbRestoration = prompter.YN("     - database dump", false)
	} else {
		dbRestoration = *restoreDBOpt
	}

	fmt.Printf("\n")

	if passphrase != "" {
		decrypted, err := decryptArchive(file, passphrase)
		if err != nil {
			return err
		}
		defer os.Remove(decrypted)
		file = decrypted
	}

	if err := untar(cfg, file, configFilesRestoration, dbRestoration); err != nil {
		return err
	}

	fmt.Printf("\n %s Done\n", color.GreenString("✓"))
	return nil
}

func untar(cfg domain.DeploymentConfig, tarball string, configFilesRestoration bool, dbRestoration bool) error {

	reader, err := os.Open(tarball)
	if err != nil {
		return err
	}
	defer reader.Close()

	gzipReader, err := gzip.NewReader(reader)
	if err != nil {
		return err
	}
	defer gzipReader.Close()

	tarReader := tar.NewReader(gzipReader)

	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return err
		}

		info := header.FileInfo()

		if configFilesRestoration && strings.HasPrefix(header.Name, "config/") {
			dest := filepath.Join(cfg.InstallDir, strings.TrimPrefix(header.Name, "config/"))

			fmt.Printf(" → Restoring %s\n", dest)

			if err := copyFile(dest, tarReader, info); err != nil {
				return err
			}
		}

		if dbRestoration && strings.HasPrefix(header.Name, "databases/") && strings.HasSuffix(header.Name, ".sql") {
			fmt.Printf("\n → Restoring database from %s\n", header.Name)

			if err := restorePostgres(cfg, tarReader); err != nil {
				return err
			}
		}
	}

	return nil
}

func copyFile(dest string, source io.Reader, sourceInfo os.FileInfo) error {

	dir := dest
	if !sourceInfo.IsDir() {
		dir = filepath.Dir(dest)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	file, err := os.OpenFile(dest, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, sourceInfo.Mode())
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = io.Copy(file, source)
	return err
}

func restorePostgres(cfg domain.DeploymentConfig, dumpReader io.Reader) error {

	containerID, err := utils.GetContainerID(domain.DBService, cfg.InstallDir)
	if err != nil {
		return err
	}
	if containerID == "" {
		return fmt.Errorf("the '%s' container is not running", domain.DBService)
	}

	containerConfig, err := utils.GetContainerConfig(containerID)
	if err != nil {
		return err
	}

	user := containerConfig.Env.Get("POSTGRES_USER", "n8n")
	database := containerConfig.Env.Get("POSTGRES_DB", "n8n")

	cmd := domain.NewCommand([]string{"docker", "exec", "-i", containerID, "psql", "-U", user, "-d", database})
	return cmd.ExecuteWithStdin(dumpReader)
}

func decryptArchive(source string, passphrase string) (string, error) {
	in, err := os.Open(source)
	if err != nil {
		return "", err
	}
	defer in.Close()

	out, err := ioutil.TempFile("", "flowuprestore")
	if err != nil {
		return "", err
	}
	defer out.Close()

	if err := utils.Decrypt(in, out, []byte(passphrase)); err != nil {
		os.Remove(out.Name())
		return "", err
	}

	return out.Name(), nil
}
