package statcrew

import crerr "github.com/cockroachdb/errors"

// ErrMalformedDocument reports a structural validation failure: unparsable
// markup or wrong venue/team counts. There is no partial result.
var ErrMalformedDocument = crerr.New("malformed game document")
