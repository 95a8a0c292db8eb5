// Package counterrepo manages repository layer of the account ID counter.
package counterrepo

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-petr/bank-ledger/pkg/errorspkg"

	"github.com/rs/zerolog"
)

// DefaultNextAccountID is the first account ID issued by a fresh ledger.
const DefaultNextAccountID = 100

// RepoFile persists the next account ID to a single file as a decimal string.
type RepoFile struct {
	path string
}

// NewRepoFile returns counter RepoFile backed by the given file.
func NewRepoFile(path string) *RepoFile {
	return &RepoFile{path: path}
}

// Load returns the persisted next account ID. An absent or unparsable file
// yields DefaultNextAccountID.
func (r *RepoFile) Load(ctx context.Context) int {
	l := zerolog.Ctx(ctx)

	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			l.Warn().Err(err).Msg("cannot read counter file")
		}

		return DefaultNextAccountID
	}

	next, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		l.Warn().Err(err).Msg("cannot parse counter file")
		return DefaultNextAccountID
	}

	return next
}

// Save rewrites the counter file with the given next account ID.
func (r *RepoFile) Save(ctx context.Context, next int) error {
	l := zerolog.Ctx(ctx)

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	if err := os.WriteFile(r.path, []byte(strconv.Itoa(next)), 0o644); err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	return nil
}
