package lookup_address

import (
	"github.com/sparkleclean/SCS-BookingService/internal/integrations/addresslookup"
)

// AddressCandidate HTTP модель адреса-кандидата
type AddressCandidate struct {
	Line1    string `json:"line1"`
	Line2    string `json:"line2,omitempty"`
	Town     string `json:"town"`
	County   string `json:"county,omitempty"`
	Postcode string `json:"postcode"`
}

// AddressLookupResponse HTTP response model
type AddressLookupResponse struct {
	Postcode  string             `json:"postcode"`
	Addresses []AddressCandidate `json:"addresses"`
}

// FromCandidates конвертирует кандидатов интеграции в HTTP response
func FromCandidates(postcode string, candidates []addresslookup.Candidate) *AddressLookupResponse {
	addresses := make([]AddressCandidate, len(candidates))
	for i, c := range candidates {
		addresses[i] = AddressCandidate{
			Line1:    c.Line1,
			Line2:    c.Line2,
			Town:     c.Town,
			County:   c.County,
			Postcode: c.Postcode,
		}
	}

	return &AddressLookupResponse{
		Postcode:  postcode,
		Addresses: addresses,
	}
}
