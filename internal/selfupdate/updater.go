package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

var (
	ErrDevBuild      = errors.New("cannot update a development build")
	ErrAlreadyLatest = errors.New("already running the latest version")
	ErrChecksum      = errors.New("checksum verification failed")
)

// ProgressFunc receives a short stage name ("check", "download", "verify",
// "extract", "apply", "done") and a human-readable detail line.
type ProgressFunc func(stage, detail string)

// releaseAsset names the archive published for a platform and the binary
// inside it.
type releaseAsset struct {
	archive string
	binary  string
}

// Update replaces the running binary with the release tagged target, or with
// the latest release when target is empty. current must be a real release
// version; "(devel)" builds are refused.
func (c *Checker) Update(ctx context.Context, current, target string, report ProgressFunc) error {
	if current == "(devel)" {
		return ErrDevBuild
	}

	tag := target
	if tag == "" {
		report("check", "Checking for latest version...")
		res, err := c.Check(ctx, &CheckInput{Version: current})
		if err != nil {
			return fmt.Errorf("check for updates: %w", err)
		}
		if !res.UpdateAvailable {
			return ErrAlreadyLatest
		}
		tag = res.LatestVersion
	}

	asset, err := releaseAssetFor(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		return err
	}

	report("download", fmt.Sprintf("Downloading %s...", tag))
	archive, err := c.fetch(ctx, c.releaseURL(tag, asset.archive))
	if err != nil {
		return fmt.Errorf("download archive: %w", err)
	}

	report("verify", "Verifying checksum...")
	sums, err := c.fetch(ctx, c.releaseURL(tag, "checksums.txt"))
	if err != nil {
		return fmt.Errorf("download checksums: %w", err)
	}
	want, err := checksumFor(sums, asset.archive)
	if err != nil {
		return err
	}
	got := sha256.Sum256(archive)
	if hex.EncodeToString(got[:]) != want {
		return fmt.Errorf("%w: expected %s, got %s", ErrChecksum, want, hex.EncodeToString(got[:]))
	}

	report("extract", "Extracting binary...")
	bin, err := unpack(archive, asset)
	if err != nil {
		return fmt.Errorf("extract binary: %w", err)
	}

	report("apply", "Applying update...")
	path, err := c.execPath()
	if err != nil {
		return fmt.Errorf("resolve executable path: %w", err)
	}
	if err := swapBinary(path, bin); err != nil {
		return fmt.Errorf("apply update: %w", err)
	}

	report("done", fmt.Sprintf("Updated to %s", tag))
	return nil
}

// releaseURL builds the download URL for one file of a tagged release.
func (c *Checker) releaseURL(tag, file string) string {
	base := strings.TrimRight(c.downloadBaseURL, "/")
	return fmt.Sprintf("%s/%s/%s/releases/download/%s/%s", base, c.owner, c.repo, tag, file)
}

func releaseAssetFor(goos, goarch string) (releaseAsset, error) {
	arch := map[string]string{"amd64": "x86_64", "arm64": "arm64", "386": "i386"}[goarch]
	switch goos {
	case "darwin":
		// Darwin releases ship a universal binary.
		return releaseAsset{archive: "wordrow_Darwin_all.tar.gz", binary: "wordrow"}, nil
	case "linux":
		if arch == "" {
			return releaseAsset{}, fmt.Errorf("unsupported architecture: %s", goarch)
		}
		return releaseAsset{archive: "wordrow_Linux_" + arch + ".tar.gz", binary: "wordrow"}, nil
	case "windows":
		if arch == "" {
			return releaseAsset{}, fmt.Errorf("unsupported architecture: %s", goarch)
		}
		return releaseAsset{archive: "wordrow_Windows_" + arch + ".zip", binary: "wordrow.exe"}, nil
	default:
		return releaseAsset{}, fmt.Errorf("unsupported operating system: %s", goos)
	}
}

func (c *Checker) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}
	return io.ReadAll(resp.Body)
}

// checksumFor finds the sha256 hex digest for name in a goreleaser-style
// checksums.txt ("<hex>  <filename>" per line).
func checksumFor(sums []byte, name string) (string, error) {
	for _, line := range strings.Split(string(sums), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 2 && fields[1] == name {
			return fields[0], nil
		}
	}
	return "", fmt.Errorf("no checksum found for %s in checksums.txt", name)
}

func unpack(archive []byte, asset releaseAsset) ([]byte, error) {
	if strings.HasSuffix(asset.archive, ".zip") {
		r, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
		if err != nil {
			return nil, fmt.Errorf("open zip: %w", err)
		}
		for _, f := range r.File {
			if filepath.Base(f.Name) != asset.binary {
				continue
			}
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer func() { _ = rc.Close() }()
			return io.ReadAll(rc)
		}
		return nil, fmt.Errorf("binary %q not found in archive", asset.binary)
	}

	gz, err := gzip.NewReader(bytes.NewReader(archive))
	if err != nil {
		return nil, fmt.Errorf("open gzip: %w", err)
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil, fmt.Errorf("binary %q not found in archive", asset.binary)
		}
		if err != nil {
			return nil, fmt.Errorf("read tar: %w", err)
		}
		if hdr.Typeflag == tar.TypeReg && filepath.Base(hdr.Name) == asset.binary {
			return io.ReadAll(tr)
		}
	}
}

// swapBinary writes bin next to path and renames it into place, preserving
// the original file mode. The staging file is re-read and re-hashed before the
// rename so a tampered write never reaches the target.
func swapBinary(path string, bin []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat target: %w", err)
	}

	staging, err := os.MkdirTemp(filepath.Dir(path), ".wordrow-update-*")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(staging) }()

	staged := filepath.Join(staging, "wordrow-new")
	if err := os.WriteFile(staged, bin, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	onDisk, err := os.ReadFile(staged)
	if err != nil {
		return fmt.Errorf("re-read temp file: %w", err)
	}
	wantSum := sha256.Sum256(bin)
	gotSum := sha256.Sum256(onDisk)
	if wantSum != gotSum {
		return fmt.Errorf("%w: temp file was tampered with after write", ErrChecksum)
	}

	if err := os.Rename(staged, path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	if err := os.Chmod(path, info.Mode()); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	return nil
}
