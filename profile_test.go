package dumpr_test

import (
	"strings"
	"testing"

	"github.com/bjaus/dumpr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProfile(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    dumpr.Profile
		wantErr require.ErrorAssertionFunc
	}{
		"full": {
			input: strings.Join([]string{
				"exclude_types: [Secret]",
				"exclude_fields: [Person.Age]",
				"redact_fields: [Account.Token]",
				"trim_strings: 64",
				"max_depth: 8",
			}, "\n"),
			want: dumpr.Profile{
				ExcludeTypes:  []string{"Secret"},
				ExcludeFields: []string{"Person.Age"},
				RedactFields:  []string{"Account.Token"},
				TrimStrings:   64,
				MaxDepth:      8,
			},
			wantErr: require.NoError,
		},
		"empty": {
			input:   "",
			want:    dumpr.Profile{},
			wantErr: require.NoError,
		},
		"malformed yaml": {
			input:   "exclude_types: [unclosed",
			wantErr: require.Error,
		},
		"field entry missing dot": {
			input:   "exclude_fields: [NoDot]",
			wantErr: require.Error,
		},
		"field entry empty owner": {
			input:   "redact_fields: [.Name]",
			wantErr: require.Error,
		},
		"empty type entry": {
			input:   `exclude_types: [""]`,
			wantErr: require.Error,
		},
		"negative trim": {
			input:   "trim_strings: -1",
			wantErr: require.Error,
		},
		"negative depth": {
			input:   "max_depth: -2",
			wantErr: require.Error,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := dumpr.ParseProfile([]byte(tt.input))
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseProfileErrorIs(t *testing.T) {
	t.Parallel()
	_, err := dumpr.ParseProfile([]byte("exclude_fields: [NoDot]"))
	require.ErrorIs(t, err, dumpr.ErrInvalidProfile)
}

func TestWithProfileYAMLExcludesByTypeName(t *testing.T) {
	t.Parallel()
	p, err := dumpr.New(dumpr.WithProfileYAML([]byte("exclude_types: [credentials]")))
	require.NoError(t, err)
	got, err := p.Dump(account{Owner: "o", Creds: credentials{User: "ada", Password: "hunter2"}})
	require.NoError(t, err)
	assert.Equal(t, "account\n\tOwner = o\n", got)
}

func TestWithProfileYAMLRedacts(t *testing.T) {
	t.Parallel()
	p, err := dumpr.New(dumpr.WithProfileYAML([]byte("redact_fields: [credentials.Password]")))
	require.NoError(t, err)
	got, err := p.Dump(account{Owner: "o", Creds: credentials{User: "ada", Password: "hunter2"}})
	require.NoError(t, err)
	want := strings.Join([]string{
		"account",
		"\tOwner = o",
		"\tCreds = credentials",
		"\t\tUser = ada",
		"\t\tPassword = [REDACTED]",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestWithProfileYAMLTrimsStrings(t *testing.T) {
	t.Parallel()
	p, err := dumpr.New(dumpr.WithProfileYAML([]byte("trim_strings: 5")))
	require.NoError(t, err)
	got, err := p.Dump(credentials{User: "maximilian", Password: "hunter2"})
	require.NoError(t, err)
	assert.Equal(t, "credentials\n\tUser = maxim\n\tPassword = hunte\n", got)
}

func TestWithProfileYAMLMaxDepth(t *testing.T) {
	t.Parallel()
	p, err := dumpr.New(dumpr.WithProfileYAML([]byte("max_depth: 1")))
	require.NoError(t, err)
	got, err := p.Dump(account{Owner: "o", Creds: credentials{User: "ada", Password: "hunter2"}})
	require.NoError(t, err)
	want := strings.Join([]string{
		"account",
		"\tOwner = o",
		"\tCreds = credentials",
		"\t\tUser = Max depth reached",
		"\t\tPassword = Max depth reached",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestWithProfileRedactionBeatsFormatter(t *testing.T) {
	t.Parallel()
	p, err := dumpr.New(
		dumpr.FormatField[credentials]("Password", strings.ToUpper),
		dumpr.WithProfileYAML([]byte("redact_fields: [credentials.Password]")),
	)
	require.NoError(t, err)
	got, err := p.Dump(credentials{User: "ada", Password: "hunter2"})
	require.NoError(t, err)
	assert.Contains(t, got, "Password = [REDACTED]")
	assert.NotContains(t, got, "HUNTER2")
}

func TestWithProfile(t *testing.T) {
	t.Parallel()
	p, err := dumpr.New(dumpr.WithProfile(dumpr.Profile{
		ExcludeFields: []string{"person.Age"},
	}))
	require.NoError(t, err)
	got, err := p.Dump(person{Name: "Alice", Age: 30})
	require.NoError(t, err)
	assert.Equal(t, "person\n\tName = Alice\n", got)
}

func TestWithProfileInvalid(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		opt dumpr.Option
	}{
		"struct": {opt: dumpr.WithProfile(dumpr.Profile{ExcludeFields: []string{"NoDot"}})},
		"yaml":   {opt: dumpr.WithProfileYAML([]byte("max_depth: -1"))},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			p, err := dumpr.New(tt.opt)
			require.ErrorIs(t, err, dumpr.ErrInvalidProfile)
			assert.Nil(t, p)
		})
	}
}
