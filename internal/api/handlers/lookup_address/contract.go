package lookup_address

import (
	"context"

	"github.com/sparkleclean/SCS-BookingService/internal/integrations/addresslookup"
)

type AddressLookupClient interface {
	Lookup(ctx context.Context, postcode string) ([]addresslookup.Candidate, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
