package pinecone

import (
	"github.com/pinecone-io/go-pinecone/v3/pinecone"
	"github.com/poiesic/compsearch/index"
	"google.golang.org/protobuf/types/known/structpb"
)

// buildFilter translates categorical restrictions into a Pinecone metadata
// filter. Each non-empty set becomes an $in clause on its metadata field;
// empty sets produce no clause. A filter with no clauses is nil, which
// leaves the query unrestricted.
func buildFilter(f index.Filter) (*pinecone.MetadataFilter, error) {
	clauses := map[string]any{}
	if len(f.Countries) > 0 {
		clauses[metaCountry] = map[string]any{"$in": toAnySlice(f.Countries)}
	}
	if len(f.Sectors) > 0 {
		clauses[metaSector] = map[string]any{"$in": toAnySlice(f.Sectors)}
	}
	if len(clauses) == 0 {
		return nil, nil
	}
	return structpb.NewStruct(clauses)
}

func toAnySlice(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
