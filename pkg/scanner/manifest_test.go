package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConanfile(t *testing.T) {
	content := `# project deps
[requires]
zlib/1.2.13
openssl/[>=3.0 <4]
fmt/10.1.1#abc123
libcurl/8.4.0@user/stable

[generators]
CMakeDeps
cmake_find_package
`
	deps := ParseConanfile(content)
	require.Len(t, deps, 4)

	assert.Equal(t, Dependency{Name: "zlib", Constraint: "=1.2.13", Resolved: "1.2.13", Source: SourceConanfile}, deps[0])
	assert.Equal(t, Dependency{Name: "openssl", Constraint: ">=3.0 <4", Source: SourceConanfile}, deps[1])
	assert.Equal(t, Dependency{Name: "fmt", Constraint: "=10.1.1", Resolved: "10.1.1", Source: SourceConanfile}, deps[2])
	assert.Equal(t, Dependency{Name: "libcurl", Constraint: "=8.4.0", Resolved: "8.4.0", Source: SourceConanfile}, deps[3])
}

func TestParseConanfileNoRequiresSection(t *testing.T) {
	assert.Empty(t, ParseConanfile("[generators]\nCMakeDeps\n"))
	assert.Empty(t, ParseConanfile(""))
}

func TestParseCMakeLists(t *testing.T) {
	content := `cmake_minimum_required(VERSION 3.20)
project(demo)

find_package(ZLIB 1.2.11 REQUIRED)
find_package(OpenSSL REQUIRED)
find_package(ZLIB)  # duplicate, ignored

include(FetchContent)
FetchContent_Declare(
  googletest
  GIT_REPOSITORY https://github.com/google/googletest.git
  GIT_TAG v1.14.0
)
FetchContent_Declare(
  spdlog
  GIT_REPOSITORY https://github.com/gabime/spdlog.git
  GIT_TAG main
)
`
	deps := ParseCMakeLists(content)
	require.Len(t, deps, 4)

	assert.Equal(t, Dependency{Name: "ZLIB", Constraint: ">=1.2.11", Source: SourceCMake}, deps[0])
	assert.Equal(t, Dependency{Name: "OpenSSL", Source: SourceCMake}, deps[1])
	assert.Equal(t, Dependency{Name: "googletest", Constraint: "=1.14.0", Resolved: "1.14.0", Source: SourceCMake}, deps[2])
	// Branch-named GIT_TAG carries no version.
	assert.Equal(t, Dependency{Name: "spdlog", Source: SourceCMake}, deps[3])
}

func TestValidateConstraint(t *testing.T) {
	tests := []struct {
		expr    string
		wantErr bool
	}{
		{"", false},
		{"=1.2.13", false},
		{">=1.2.11", false},
		{">=3.0 <4", false}, // conan space-separated conjunction
		{">=1.0, <2.0", false},
		{">=1.2.0,<2.0.0", false}, // comma without space
		{"^1.2", false},
		{"not-a-version", true},
		{">=x.y", true},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			err := ValidateConstraint(tt.expr)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
