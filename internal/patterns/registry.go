// Package patterns holds the static vendor-recognition tables: the ordered
// regex registry, lexical SaaS indicators, curated classification lists,
// generic consumer mail domains, and the known-domain lookup. All data is
// embedded and compiled once at process start.
package patterns

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed patterns.yaml
var rawPatterns []byte

// VendorMatch is the result of a registry or domain lookup.
type VendorMatch struct {
	Name     string
	Category string
}

type vendorPattern struct {
	re       *regexp.Regexp
	name     string
	category string
}

type patternsFile struct {
	Vendors []struct {
		Pattern  string `yaml:"pattern"`
		Name     string `yaml:"name"`
		Category string `yaml:"category"`
	} `yaml:"vendors"`
	Indicators           []string               `yaml:"indicators"`
	FixedPlan            []string               `yaml:"fixed_plan"`
	Negotiable           []string               `yaml:"negotiable"`
	NegotiableCategories []string               `yaml:"negotiable_categories"`
	GenericDomains       []string               `yaml:"generic_domains"`
	KnownDomains         map[string]VendorMatch `yaml:"known_domains"`
}

var (
	vendorPatterns       []vendorPattern
	saasIndicators       []string
	fixedPlanBrands      []string
	negotiableBrands     []string
	negotiableCategories map[string]struct{}
	genericDomains       map[string]struct{}
	knownDomains         map[string]VendorMatch
)

var reNonWord = regexp.MustCompile(`[^\w\s]`)
var reSpaces = regexp.MustCompile(`\s+`)

func init() {
	var f patternsFile
	if err := yaml.Unmarshal(rawPatterns, &f); err != nil {
		panic(fmt.Sprintf("patterns: parse embedded data: %v", err))
	}

	vendorPatterns = make([]vendorPattern, 0, len(f.Vendors))
	for _, v := range f.Vendors {
		vendorPatterns = append(vendorPatterns, vendorPattern{
			re:       regexp.MustCompile(`(?i)` + v.Pattern),
			name:     v.Name,
			category: v.Category,
		})
	}

	saasIndicators = f.Indicators
	fixedPlanBrands = f.FixedPlan
	negotiableBrands = f.Negotiable

	negotiableCategories = make(map[string]struct{}, len(f.NegotiableCategories))
	for _, c := range f.NegotiableCategories {
		negotiableCategories[strings.ToLower(c)] = struct{}{}
	}
	genericDomains = make(map[string]struct{}, len(f.GenericDomains))
	for _, d := range f.GenericDomains {
		genericDomains[strings.ToLower(d)] = struct{}{}
	}
	knownDomains = make(map[string]VendorMatch, len(f.KnownDomains))
	for d, m := range f.KnownDomains {
		knownDomains[strings.ToLower(d)] = m
	}
}

// DetectSaaSVendor scans text against the registry. First match wins, so
// ordering in patterns.yaml encodes priority among overlapping patterns.
func DetectSaaSVendor(text string) (VendorMatch, bool) {
	for _, p := range vendorPatterns {
		if p.re.MatchString(text) {
			return VendorMatch{Name: p.name, Category: p.category}, true
		}
	}
	return VendorMatch{}, false
}

// IsSaaSSubscription reports whether text looks subscription-related. It is
// deliberately recall-biased: a registry hit OR any lexical indicator counts.
func IsSaaSSubscription(text string) bool {
	if _, ok := DetectSaaSVendor(text); ok {
		return true
	}
	lower := strings.ToLower(text)
	for _, ind := range saasIndicators {
		if strings.Contains(lower, ind) {
			return true
		}
	}
	return false
}

// NormalizeVendorName produces the identity key used for grouping and lookup:
// lowercase, special characters stripped, whitespace collapsed.
func NormalizeVendorName(name string) string {
	s := strings.ToLower(name)
	s = reNonWord.ReplaceAllString(s, "")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// IsGenericDomain reports whether domain is a consumer mail provider that must
// never become a vendor identity or be used for domain lookup.
func IsGenericDomain(domain string) bool {
	_, ok := genericDomains[strings.ToLower(strings.TrimSpace(domain))]
	return ok
}

// LookupDomain resolves a sender domain against the known-domain table.
func LookupDomain(domain string) (VendorMatch, bool) {
	m, ok := knownDomains[strings.ToLower(strings.TrimSpace(domain))]
	return m, ok
}
