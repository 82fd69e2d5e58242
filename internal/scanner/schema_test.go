package scanner

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractSchemaTypes_ObjectAndArrayBlocks(t *testing.T) {
	t.Parallel()

	html := `<html><head>
<script type="application/ld+json">{"@type": "Organization"}</script>
<script type="application/ld+json">[{"@type": "WebSite"}, {"@type": ["Article", "FAQPage"]}]</script>
</head></html>`

	got := ExtractSchemaTypes([]byte(html))
	require.ElementsMatch(t, []string{"Organization", "WebSite", "Article", "FAQPage"}, got)

	missing := MissingSchemas(got, ExpectedSchemaTypes)
	require.Equal(t, []string{"HowTo"}, missing)
}

func TestExtractSchemaTypes_MalformedBlockSkipped(t *testing.T) {
	t.Parallel()

	html := `<html><head>
<script type="application/ld+json">{"@type": "Organization"</script>
<script type="application/ld+json">{"@type": "Article"}</script>
</head></html>`

	require.Equal(t, []string{"Article"}, ExtractSchemaTypes([]byte(html)))
}

func TestExtractSchemaTypes_IgnoresIrrelevantContent(t *testing.T) {
	t.Parallel()

	html := `<html><head>
<script type="text/javascript">{"@type": "Organization"}</script>
<script type="application/ld+json">{"name": "no type here"}</script>
<script type="application/ld+json">{"@type": 42}</script>
<script type="application/ld+json">{"@type": ["Article", 7, null]}</script>
</head></html>`

	require.Equal(t, []string{"Article"}, ExtractSchemaTypes([]byte(html)))
}

func TestExtractSchemaTypes_Deduplicates(t *testing.T) {
	t.Parallel()

	html := `<html><head>
<script type="application/ld+json">{"@type": "Article"}</script>
<script type="application/ld+json">[{"@type": "Article"}, {"@type": "WebSite"}]</script>
</head></html>`

	require.Equal(t, []string{"Article", "WebSite"}, ExtractSchemaTypes([]byte(html)))
}

func TestExtractSchemaTypes_EmptyBody(t *testing.T) {
	t.Parallel()

	got := ExtractSchemaTypes(nil)
	require.NotNil(t, got)
	require.Empty(t, got)
	require.Equal(t, ExpectedSchemaTypes, MissingSchemas(got, ExpectedSchemaTypes))
}

func TestMissingSchemas_PreservesExpectedOrder(t *testing.T) {
	t.Parallel()

	found := []string{"Article", "Organization"}
	require.Equal(t, []string{"WebSite", "FAQPage", "HowTo"}, MissingSchemas(found, ExpectedSchemaTypes))
}

func TestMissingSchemas_NothingMissing(t *testing.T) {
	t.Parallel()

	missing := MissingSchemas(ExpectedSchemaTypes, ExpectedSchemaTypes)
	require.NotNil(t, missing)
	require.Empty(t, missing)
}
