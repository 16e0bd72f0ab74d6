package pol

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/joshuapare/polkit/internal/locator"
	"github.com/joshuapare/polkit/internal/mmfile"
	"github.com/joshuapare/polkit/internal/reader"
	"github.com/joshuapare/polkit/pkg/types"
)

// Scope selects the User or Machine policy store.
type Scope = locator.Scope

const (
	User    = locator.User
	Machine = locator.Machine
)

// ParseScope accepts "user" or "machine" in any case.
func ParseScope(s string) (Scope, error) {
	return locator.ParseScope(s)
}

// Loader opens policy files and stores. The zero value is ready to use:
// it logs nothing and resolves stores under the platform default.
type Loader struct {
	// Logger receives one record per failed load. Nil discards.
	Logger *slog.Logger

	// Root overrides the GroupPolicy directory used by LoadStore.
	Root string
}

// Load decodes the file at path. A missing file is types.ErrNotFound.
func (l *Loader) Load(path string) (types.PolFile, error) {
	f, err := l.load(path)
	if err != nil {
		l.logger().Error("load policy file", "path", path, "kind", kindOf(err), "err", err)
		return types.PolFile{}, err
	}
	l.logger().Debug("loaded policy file", "path", path, "version", f.Version, "records", len(f.Policies))
	return f, nil
}

// Resolve returns the Registry.pol path for scope.
func (l *Loader) Resolve(scope Scope) (string, error) {
	return locator.Locator{Root: l.Root}.Resolve(scope)
}

// LoadStore decodes the policy store for scope. A store with no file is an
// empty PolFile.
func (l *Loader) LoadStore(scope Scope) (types.PolFile, error) {
	path, err := l.Resolve(scope)
	if err != nil {
		l.logger().Error("resolve policy store", "scope", scope, "err", err)
		return types.PolFile{}, err
	}
	f, err := l.load(path)
	switch {
	case errors.Is(err, types.ErrNotFound):
		l.logger().Debug("policy store absent", "scope", scope, "path", path)
		return emptyPolFile(), nil
	case err != nil:
		l.logger().Error("load policy store", "scope", scope, "path", path, "kind", kindOf(err), "err", err)
		return types.PolFile{}, err
	}
	l.logger().Debug("loaded policy store", "scope", scope, "path", path, "records", len(f.Policies))
	return f, nil
}

// LoadStores decodes each scope concurrently. Results are in argument order;
// the first failure cancels the rest and is returned alone.
func (l *Loader) LoadStores(ctx context.Context, scopes ...Scope) ([]types.PolFile, error) {
	out := make([]types.PolFile, len(scopes))
	g, ctx := errgroup.WithContext(ctx)
	for i, scope := range scopes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := l.LoadStore(scope)
			if err != nil {
				return err
			}
			out[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (l *Loader) load(path string) (types.PolFile, error) {
	m, err := mmfile.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return types.PolFile{}, &types.Error{Kind: types.ErrKindNotFound, Msg: path, Err: err}
		}
		return types.PolFile{}, &types.Error{Kind: types.ErrKindIO, Msg: "open " + path, Err: err}
	}
	defer m.Close()
	return reader.DecodeBytes(m.Bytes())
}

func (l *Loader) logger() *slog.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return discard
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func kindOf(err error) string {
	var perr *types.Error
	if errors.As(err, &perr) {
		return perr.Kind.String()
	}
	return "unknown"
}

func emptyPolFile() types.PolFile {
	return types.PolFile{
		Signature: formatSignature,
		Version:   formatVersion,
		Policies:  []types.Policy{},
	}
}
