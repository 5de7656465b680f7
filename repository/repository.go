// Package repository locates the git worktree that catalogs live in.
package repository

import (
	"os"

	"github.com/jiangxin/goconfig"
	log "github.com/sirupsen/logrus"
)

// Repository holds the opened repository and the error from opening it.
type Repository struct {
	repository *goconfig.Repository
	error      error
}

var theRepository Repository

// Open will try to find a repository in dir.
func (v *Repository) Open(dir string) error {
	v.repository, v.error = goconfig.FindRepository(dir)
	return v.error
}

// OpenRepository will try to find a repository in dir. Failure is not
// fatal; commands that need a repository check Opened.
func OpenRepository(dir string) {
	_ = theRepository.Open(dir)
}

// Opened returns true if a repository was successfully opened, e.g. when
// running inside a git worktree.
func Opened() bool {
	return theRepository.error == nil && theRepository.repository != nil
}

// Err returns the error from the last OpenRepository call, or nil.
func Err() error {
	return theRepository.error
}

// ChdirProjectRoot changes the current directory to the worktree root, so
// discovered catalog paths like po/XX.po resolve no matter where the
// command started. Outside a repository it is a no-op and explicit paths
// keep resolving against the start directory.
func ChdirProjectRoot() {
	if !Opened() {
		return
	}
	if err := os.Chdir(theRepository.repository.WorkDir()); err != nil {
		log.Fatal(err)
	}
}

// WorkDirOrCwd returns the worktree root when a repository is opened,
// otherwise the current working directory. Relative catalog paths resolve
// against this directory.
func WorkDirOrCwd() string {
	if Opened() {
		return theRepository.repository.WorkDir()
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}
