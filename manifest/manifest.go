// Package manifest knows about the configuration artifacts that carry
// the project version string.
//
// The artifacts are treated as opaque text blobs. The version is located
// and replaced textually so that the formatting of the files is never
// touched; the rewritten content is only re-parsed afterwards as a
// sanity check.
package manifest

import (
	// Stdlib
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	// Internal
	"github.com/cascii/verflow/config"
	"github.com/cascii/verflow/errs"
	"github.com/cascii/verflow/log"
	"github.com/cascii/verflow/version"

	// Vendor
	"github.com/BurntSushi/toml"
)

// ErrVersionNotFound is returned when the canonical artifact does not
// contain a version field this tool understands.
var ErrVersionNotFound = errors.New("version string not found")

type Kind int

const (
	// KindManifest is a TOML manifest with a `version = "X.Y.Z"` field.
	KindManifest Kind = iota
	// KindDescriptor is a JSON descriptor with a `"version": "X.Y.Z"` field.
	KindDescriptor
)

type Artifact struct {
	// Path is relative to the repository root.
	Path string
	Kind Kind
	// Optional artifacts are silently skipped when missing.
	Optional bool
}

// Artifacts returns the configuration artifacts in the fixed order
// they are rewritten in. The first one is the canonical artifact.
func Artifacts(cfg *config.Config) []*Artifact {
	return []*Artifact{
		{Path: cfg.BackendManifest, Kind: KindManifest},
		{Path: cfg.SecondaryManifest, Kind: KindManifest, Optional: true},
		{Path: cfg.Descriptor, Kind: KindDescriptor, Optional: true},
	}
}

var versionFieldMatcher = regexp.MustCompile(
	`(?m)^version\s*=\s*"(` + version.MatcherString + `)"`)

// CanonicalVersion reads the current project version from the manifest
// at the given path relative to the repository root.
func CanonicalVersion(root, pathFromRoot string) (*version.Version, error) {
	task := fmt.Sprintf("Read the project version from '%v'", pathFromRoot)

	content, err := os.ReadFile(filepath.Join(root, pathFromRoot))
	if err != nil {
		return nil, errs.NewError(task, err)
	}

	match := versionFieldMatcher.FindSubmatch(content)
	if match == nil {
		hint := fmt.Sprintf(`
Make sure %v contains a version field:

  version = "X.Y.Z"

`, pathFromRoot)
		return nil, errs.NewErrorWithHint(task, ErrVersionNotFound, hint)
	}

	ver, err := version.Parse(string(match[1]))
	if err != nil {
		return nil, errs.NewError(task, err)
	}
	return ver, nil
}

// fieldMatcher matches the version field of the artifact carrying the
// given version string, whatever spacing the field was written with.
// Group 1 is the part of the field preceding the quoted version string.
func (art *Artifact) fieldMatcher(versionString string) *regexp.Regexp {
	quoted := regexp.QuoteMeta(versionString)
	switch art.Kind {
	case KindDescriptor:
		return regexp.MustCompile(`("version"\s*:\s*)"` + quoted + `"`)
	default:
		return regexp.MustCompile(`(?m)^(version\s*=\s*)"` + quoted + `"`)
	}
}

// Rewrite replaces the old version string with the new one in the
// artifact, substituting the quoted version string of the first version
// field found. The field keeps whatever spacing it was written with,
// and the first occurrence wins so that e.g. dependency version pins
// further down a manifest are never touched.
//
// A substitution miss is not an error, it is reported to the operator
// and the artifact is left alone. Missing optional artifacts are skipped.
func (art *Artifact) Rewrite(root string, oldVer, newVer *version.Version) (changed bool, err error) {
	task := fmt.Sprintf("Rewrite the version field in '%v'", art.Path)

	path := filepath.Join(root, art.Path)
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && art.Optional {
			log.V(log.Verbose).Skip(task)
			return false, nil
		}
		return false, errs.NewError(task, err)
	}

	loc := art.fieldMatcher(oldVer.String()).FindSubmatchIndex(content)
	if loc == nil {
		log.Warn(fmt.Sprintf(
			"Version string '%v' not found in '%v', leaving the file alone", oldVer, art.Path))
		return false, nil
	}

	rewritten := make([]byte, 0, len(content))
	rewritten = append(rewritten, content[:loc[3]]...)
	rewritten = append(rewritten, fmt.Sprintf("%q", newVer.String())...)
	rewritten = append(rewritten, content[loc[1]:]...)

	log.Run(task)
	if err := os.WriteFile(path, rewritten, 0644); err != nil {
		return false, errs.NewError(task, err)
	}

	if err := art.validate(rewritten); err != nil {
		log.Warn(fmt.Sprintf(
			"'%v' does not parse after the rewrite: %v", art.Path, err))
	}

	return true, nil
}

// validate re-parses the rewritten artifact. A failure here means the
// file was malformed to begin with; the substitution itself cannot
// break the syntax.
func (art *Artifact) validate(content []byte) error {
	var v interface{}
	switch art.Kind {
	case KindDescriptor:
		return json.Unmarshal(content, &v)
	default:
		return toml.Unmarshal(content, &v)
	}
}
