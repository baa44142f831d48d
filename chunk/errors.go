package chunk

import "errors"

// ErrAssetNotPlaceable is returned when a Placed reference's asset has no
// chunk-item factory result — the base spec's "placed-but-not-placeable"
// error category. It is fatal and never retried.
var ErrAssetNotPlaceable = errors.New("asset was requested to be placed in the same chunk, but this wasn't possible")

// ErrNoRootChunkItem is returned if the entry (or an additional entry) asset
// itself is refused by the chunk-item factory; the content walk cannot even
// seed its root edges without one.
var ErrNoRootChunkItem = errors.New("entry asset has no chunk item representation")

func assetNotPlaceableError(ident interface{ String() string }) error {
	return &assetError{ident: ident.String(), err: ErrAssetNotPlaceable}
}

type assetError struct {
	ident string
	err   error
}

func (e *assetError) Error() string {
	return "asset " + e.ident + ": " + e.err.Error()
}

func (e *assetError) Unwrap() error {
	return e.err
}
