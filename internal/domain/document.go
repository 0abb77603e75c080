package domain

// Role identifies which dataset a corpus belongs to.
type Role string

// Corpus roles. Corpora are disjoint; matching always crosses roles.
const (
	RoleTraining    Role = "training"
	RoleJob         Role = "job"
	RoleRealization Role = "realization"
)

// IsValid checks if the role is one of the supported values.
func (r Role) IsValid() bool {
	return r == RoleTraining || r == RoleJob || r == RoleRealization
}

// Document is one record of a corpus together with the derived fields each
// preprocessing stage attaches to it. A document is mutated in place while
// the pipeline runs and treated as immutable once similarity starts.
type Document struct {
	Name       string // program name or job-position name
	Company    string // job postings only
	SourceText string // raw text the pipeline starts from

	Normalized string   // lowercased, punctuation and digits stripped
	Filtered   string   // Normalized with stopwords removed
	Tokens     []string // Filtered split on whitespace
	Stems      []string // Tokens mapped through the stemmer
	TokenCount int

	Vacancies int // job postings only; 0 means "not provided"

	// Realization/placement records only.
	Graduates     int
	Placed        int
	PlacementRate string // raw field, either "50.00%" or a fraction like "0.5"
}

// Corpus is an ordered document collection with a single role.
type Corpus struct {
	Role Role
	Docs []Document
}

// Len returns the number of documents.
func (c Corpus) Len() int { return len(c.Docs) }

// StemLists returns every document's stem list, in corpus order.
func (c Corpus) StemLists() [][]string {
	out := make([][]string, len(c.Docs))
	for i, d := range c.Docs {
		out[i] = d.Stems
	}
	return out
}

// Names returns every document's name, in corpus order.
func (c Corpus) Names() []string {
	out := make([]string, len(c.Docs))
	for i, d := range c.Docs {
		out[i] = d.Name
	}
	return out
}
