package embed

// TermTypes defines the valid type tags for enriched terms.
// These tags are embedded in entity identifiers, so they stay short and
// lowercase.
var TermTypes = []string{
	"abstract_concept",
	"activity",
	"animal",
	"artifact",
	"emotion",
	"event",
	"food",
	"organization",
	"person",
	"place",
	"plant",
	"technology",
	"time",
}
