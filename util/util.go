// Package util holds the file plumbing shared by the command and the app.
package util

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// OpenLog opens path for appending, discarding log output when it cannot.
func OpenLog(path string, mode os.FileMode) (file io.Writer) {

	var err error
	file, err = os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, mode)
	if err != nil {
		fmt.Printf("warning: %s\n", err.Error())
		file = io.Discard
	}

	return
}

// CloseLog closes a log opened by OpenLog.
func CloseLog(file io.Writer) {

	actually, ok := file.(*os.File)
	if ok {
		actually.Close()
	}
}

// LoadConfig reads yaml from path into cfg.
func LoadConfig(cfg any, path string) (err error) {

	data, err := os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read from %s", path)
		return
	}

	err = yaml.Unmarshal(data, cfg)
	err = errors.Wrapf(err, "failed to unmarshal %s", path)
	return
}

// SampleConfig writes data to path unless something is already there.
func SampleConfig(data []byte, path string, mode os.FileMode) (written bool, err error) {

	_, err = os.Stat(path)
	if err == nil {
		return
	}

	err = os.WriteFile(path, data, mode)
	if err != nil {
		err = errors.Wrapf(err, "failed to write to %s", path)
		return
	}

	written = true
	return
}
