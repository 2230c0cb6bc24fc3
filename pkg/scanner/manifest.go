package scanner

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver"
)

// Manifest source labels, stored as ProjectDependency.constraint_source.
const (
	SourceConanfile = "conanfile.txt"
	SourceCMake     = "CMakeLists.txt"
)

// Dependency is one entry parsed from a project manifest.
type Dependency struct {
	Name       string
	Constraint string
	Resolved   string // exact version when the manifest pins one
	Source     string
}

var (
	sectionRe      = regexp.MustCompile(`^\[([a-z_]+)\]$`)
	findPackageRe  = regexp.MustCompile(`(?i)find_package\s*\(\s*([A-Za-z0-9_.+-]+)(?:\s+([0-9][0-9A-Za-z.+-]*))?`)
	fetchContentRe = regexp.MustCompile(`(?is)FetchContent_Declare\s*\(\s*([A-Za-z0-9_.+-]+)(.*?)\)`)
	gitTagRe       = regexp.MustCompile(`(?i)GIT_TAG\s+([^\s)]+)`)
)

// ParseConanfile extracts the [requires] section of a conanfile.txt.
// Entries look like "zlib/1.2.13" or "openssl/[>=3.0 <4]"; user/channel and
// revision suffixes are dropped.
func ParseConanfile(content string) []Dependency {
	var deps []Dependency
	inRequires := false

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if m := sectionRe.FindStringSubmatch(line); m != nil {
			inRequires = m[1] == "requires"
			continue
		}
		if !inRequires {
			continue
		}

		// Strip "#revision" and "@user/channel" suffixes.
		if i := strings.Index(line, "#"); i >= 0 {
			line = line[:i]
		}
		if i := strings.Index(line, "@"); i >= 0 {
			line = line[:i]
		}

		name, version, ok := strings.Cut(line, "/")
		if !ok || name == "" || version == "" {
			continue
		}

		dep := Dependency{Name: strings.TrimSpace(name), Source: SourceConanfile}
		version = strings.TrimSpace(version)
		if strings.HasPrefix(version, "[") && strings.HasSuffix(version, "]") {
			dep.Constraint = strings.TrimSpace(version[1 : len(version)-1])
		} else {
			dep.Constraint = "=" + version
			dep.Resolved = version
		}
		deps = append(deps, dep)
	}
	return deps
}

// ParseCMakeLists extracts find_package minimum versions and
// FetchContent_Declare GIT_TAG pins from a CMakeLists.txt. find_package
// without a version yields an unconstrained dependency.
func ParseCMakeLists(content string) []Dependency {
	var deps []Dependency
	seen := map[string]bool{}

	for _, m := range findPackageRe.FindAllStringSubmatch(content, -1) {
		name := m[1]
		if seen[strings.ToLower(name)] {
			continue
		}
		seen[strings.ToLower(name)] = true

		dep := Dependency{Name: name, Source: SourceCMake}
		if m[2] != "" {
			dep.Constraint = ">=" + m[2]
		}
		deps = append(deps, dep)
	}

	for _, m := range fetchContentRe.FindAllStringSubmatch(content, -1) {
		name := m[1]
		if seen[strings.ToLower(name)] {
			continue
		}
		seen[strings.ToLower(name)] = true

		dep := Dependency{Name: name, Source: SourceCMake}
		if tag := gitTagRe.FindStringSubmatch(m[2]); tag != nil {
			version := strings.TrimPrefix(tag[1], "v")
			if _, err := semver.NewVersion(version); err == nil {
				dep.Constraint = "=" + version
				dep.Resolved = version
			}
			// Branch names and raw SHAs carry no version information.
		}
		deps = append(deps, dep)
	}
	return deps
}

// ValidateConstraint checks that a constraint expression is a parseable
// semver range. Conjunctions arrive either comma-separated or, Conan-style,
// space-separated; both normalize to one comma form.
func ValidateConstraint(expr string) error {
	if expr == "" {
		return nil
	}
	normalized := strings.Join(strings.Fields(strings.ReplaceAll(expr, ",", " ")), ", ")
	if _, err := semver.NewConstraint(normalized); err != nil {
		return fmt.Errorf("invalid version constraint %q: %w", expr, err)
	}
	return nil
}
