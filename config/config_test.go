package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockParser struct {
	parseFunc func(data []byte, path string) (*Mapping, error)
}

func (m *mockParser) Parse(data []byte, path string) (*Mapping, error) {
	return m.parseFunc(data, path)
}

type mockDataFetcher struct {
	fetchFunc func() ([]byte, error)
}

func (m *mockDataFetcher) Fetch() ([]byte, error) {
	return m.fetchFunc()
}

func staticFetcher(data string) *mockDataFetcher {
	return &mockDataFetcher{
		fetchFunc: func() ([]byte, error) {
			return []byte(data), nil
		},
	}
}

// documentParser returns a fixed mapping per payload.
func documentParser(documents map[string]*Mapping) *mockParser {
	return &mockParser{
		parseFunc: func(data []byte, _ string) (*Mapping, error) {
			document, ok := documents[string(data)]
			if !ok {
				return nil, errors.New("unknown document")
			}

			return document, nil
		},
	}
}

func TestLoad_MergesSourcesInOrder(t *testing.T) {
	t.Parallel()

	parser := documentParser(map[string]*Mapping{
		"base": NewMapping(
			Field("database", NewMapping(Field("host", "localhost"), Field("port", 5432))),
			Field("debug", false),
		),
		"local": NewMapping(
			Field("database", NewMapping(Field("host", "db.local"))),
			Field("debug", true),
			Field("cache", NewMapping(Field("ttl", 30))),
		),
	})

	tree, err := Load(parser, "", staticFetcher("base"), staticFetcher("local"))
	require.NoError(t, err)

	expected := NewMapping(
		Field("database", NewMapping(Field("host", "db.local"), Field("port", 5432))),
		Field("debug", true),
		Field("cache", NewMapping(Field("ttl", 30))),
	)
	assert.True(t, expected.Equal(tree.ToTree(true)))

	cache, _ := tree.Find("cache")
	assert.IsType(t, &Node{}, cache, "overlay sections must be nodes")
}

func TestLoad_SkipsEmptySources(t *testing.T) {
	t.Parallel()

	parser := &mockParser{
		parseFunc: func(_ []byte, _ string) (*Mapping, error) {
			return NewMapping(Field("name", "app")), nil
		},
	}

	tree, err := Load(parser, "", staticFetcher(""), staticFetcher("doc"))

	require.NoError(t, err)
	assert.Equal(t, 1, tree.Count())
}

func TestLoad_NoSources(t *testing.T) {
	t.Parallel()

	tree, err := Load(&mockParser{parseFunc: nil}, "")

	require.NoError(t, err)
	assert.Equal(t, 0, tree.Count())
}

func TestLoad_PassesPath(t *testing.T) {
	t.Parallel()

	var seen string

	parser := &mockParser{
		parseFunc: func(_ []byte, path string) (*Mapping, error) {
			seen = path

			return NewMapping(), nil
		},
	}

	_, err := Load(parser, "services:api", staticFetcher("doc"))

	require.NoError(t, err)
	assert.Equal(t, "services:api", seen)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	fetchErr := errors.New("fetch failed")
	parseErr := errors.New("parse failed")

	tests := []struct {
		name      string
		fetchFunc func() ([]byte, error)
		parseFunc func(data []byte, path string) (*Mapping, error)
		wantErr   error
		wantText  string
	}{
		{
			name: "fetch error",
			fetchFunc: func() ([]byte, error) {
				return nil, fetchErr
			},
			parseFunc: func(_ []byte, _ string) (*Mapping, error) {
				return NewMapping(), nil
			},
			wantErr:  fetchErr,
			wantText: "reading source 0",
		},
		{
			name: "parse error",
			fetchFunc: func() ([]byte, error) {
				return []byte("data"), nil
			},
			parseFunc: func(_ []byte, _ string) (*Mapping, error) {
				return nil, parseErr
			},
			wantErr:  parseErr,
			wantText: "parsing source 0",
		},
	}

	for _, testInfo := range tests {
		t.Run(testInfo.name, func(t *testing.T) {
			t.Parallel()

			parser := &mockParser{parseFunc: testInfo.parseFunc}
			fetcher := &mockDataFetcher{fetchFunc: testInfo.fetchFunc}

			tree, err := Load(parser, "", fetcher)

			assert.Nil(t, tree)
			require.Error(t, err)
			require.ErrorIs(t, err, testInfo.wantErr)
			assert.Contains(t, err.Error(), testInfo.wantText)
		})
	}
}

func TestProvider_Success(t *testing.T) {
	t.Parallel()

	parser := &mockParser{
		parseFunc: func(_ []byte, _ string) (*Mapping, error) {
			return NewMapping(Field("name", "test")), nil
		},
	}

	provider := Provider("", staticFetcher("doc"))

	tree, err := provider(parser)
	require.NoError(t, err)

	assert.Equal(t, "test", tree.Get(StringKey("name"), nil))
}

func TestProvider_Error(t *testing.T) {
	t.Parallel()

	parseErr := errors.New("parse failed")
	parser := &mockParser{
		parseFunc: func(_ []byte, _ string) (*Mapping, error) {
			return nil, parseErr
		},
	}

	tree, err := Provider("", staticFetcher("doc"))(parser)

	assert.Nil(t, tree)
	require.ErrorIs(t, err, parseErr)
}
