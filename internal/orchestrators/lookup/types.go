package lookup

import (
	"github.com/soloran/tibiabot/internal/entities"
)

// LookupItemInput defines the request for an item lookup
type LookupItemInput struct {
	Name string
}

// LookupItemOutput defines the response for an item lookup
type LookupItemOutput struct {
	Result *entities.LookupResult
}

// LookupCreatureInput defines the request for a creature lookup
type LookupCreatureInput struct {
	Name string
}

// LookupCreatureOutput defines the response for a creature lookup
type LookupCreatureOutput struct {
	Result *entities.LookupResult
}
