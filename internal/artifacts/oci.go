// Package artifacts locates WordPress installations inside container
// images, so an audit can cover hosts whose sites ship as images rather
// than files on disk.
package artifacts

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/go-containerregistry/pkg/name"
	v1 "github.com/google/go-containerregistry/pkg/v1"
	"github.com/google/go-containerregistry/pkg/v1/mutate"
	"github.com/google/go-containerregistry/pkg/v1/remote"
	"github.com/google/go-containerregistry/pkg/v1/tarball"

	"github.com/wpscout/wpscout/internal/marker"
	"github.com/wpscout/wpscout/internal/types"
)

// maxMarkerBytes caps how much of a version.php entry is read. Real marker
// files are a few KB; anything larger is suspect.
const maxMarkerBytes = 1 << 20

// ScanRef resolves a remote image reference and scans its filesystem.
func ScanRef(ref string) ([]types.Install, error) {
	r, err := name.ParseReference(ref)
	if err != nil {
		return nil, fmt.Errorf("invalid image reference %q: %w", ref, err)
	}
	img, err := remote.Image(r)
	if err != nil {
		return nil, fmt.Errorf("fetch image %q: %w", ref, err)
	}
	return FindInstalls(img)
}

// ScanTarball scans a docker-save style tarball on disk.
func ScanTarball(p string) ([]types.Install, error) {
	img, err := tarball.ImageFromPath(p, nil)
	if err != nil {
		return nil, fmt.Errorf("open image tarball %q: %w", p, err)
	}
	return FindInstalls(img)
}

// FindInstalls walks the image's flattened filesystem and records every
// wp-includes/version.php entry. Extraction already applies layer ordering
// and whiteouts, so the result reflects the final filesystem.
func FindInstalls(img v1.Image) ([]types.Install, error) {
	rc := mutate.Extract(img)
	defer rc.Close()

	var installs []types.Install
	tr := tar.NewReader(rc)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return installs, fmt.Errorf("read image filesystem: %w", err)
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}
		entry := path.Clean(strings.TrimPrefix(hdr.Name, "./"))
		if path.Base(entry) != marker.File || path.Base(path.Dir(entry)) != marker.Dir {
			continue
		}
		b, err := io.ReadAll(io.LimitReader(tr, maxMarkerBytes))
		if err != nil {
			continue
		}
		installs = append(installs, types.Install{
			VersionPath: "/" + entry,
			Version:     marker.ExtractVersion(string(b)),
			Depth:       entryDepth(entry),
		})
	}
	return installs, nil
}

// entryDepth counts directory descents from the image root to the
// installation root (the parent of wp-includes).
func entryDepth(entry string) int {
	installRoot := path.Dir(path.Dir(entry))
	if installRoot == "." || installRoot == "/" {
		return 0
	}
	return strings.Count(installRoot, "/") + 1
}
