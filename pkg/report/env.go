package report

import (
	"os"

	"github.com/beevik/etree"
	"github.com/costaindustries-source/mac-cleaner/pkg/logging"
	"github.com/costaindustries-source/mac-cleaner/pkg/space"
	"github.com/costaindustries-source/mac-cleaner/pkg/types"
	"golang.org/x/sys/unix"
)

// systemVersionPlist holds the macOS product and build version.
const systemVersionPlist = "/System/Library/CoreServices/SystemVersion.plist"

// CaptureEnvironment snapshots the host context a run executes in. Every
// probe degrades to an empty field rather than failing the run; the
// snapshot is report garnish, not a precondition.
func CaptureEnvironment() types.EnvironmentSnapshot {
	logger := logging.GetLogger("report")
	snap := types.EnvironmentSnapshot{}

	if version, build, err := readSystemVersion(systemVersionPlist); err == nil {
		snap.ProductVersion = version
		snap.BuildVersion = build
	} else {
		logger.Debug().Err(err).Msg("Could not read SystemVersion.plist")
	}

	var uts unix.Utsname
	if err := unix.Uname(&uts); err == nil {
		snap.KernelVersion = unixString(uts.Release[:])
	}

	if host, err := os.Hostname(); err == nil {
		snap.Hostname = host
	}

	if usage, err := space.Usage("/"); err == nil {
		snap.DiskBefore = usage
	} else {
		logger.Debug().Err(err).Msg("Could not measure disk usage")
	}

	return snap
}

// readSystemVersion pulls ProductVersion and ProductBuildVersion out of
// the plist. The format is a flat dict of alternating <key> and <string>
// elements.
func readSystemVersion(path string) (version, build string, err error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return "", "", err
	}

	dict := doc.FindElement("//dict")
	if dict == nil {
		return "", "", errNoDict
	}

	var key string
	for _, child := range dict.ChildElements() {
		switch child.Tag {
		case "key":
			key = child.Text()
		case "string":
			switch key {
			case "ProductVersion":
				version = child.Text()
			case "ProductBuildVersion":
				build = child.Text()
			}
		}
	}
	return version, build, nil
}

var errNoDict = &plistError{"no dict element in plist"}

type plistError struct{ msg string }

func (e *plistError) Error() string { return e.msg }

// unixString trims a NUL-terminated utsname byte field.
func unixString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
