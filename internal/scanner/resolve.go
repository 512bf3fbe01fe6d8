package scanner

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/subtally/subtally/constants"
	"github.com/subtally/subtally/internal/llm"
	"github.com/subtally/subtally/internal/patterns"
)

// ResolvedVendor is the outcome of vendor-name resolution for one message.
type ResolvedVendor struct {
	Name     string
	Domain   string
	Category string
}

var domainCaser = cases.Title(language.English)

// ResolveVendor reconciles the extracted vendor name, the sender domain, and
// the pattern registry into one canonical identity. Strict priority:
//
//  1. extracted vendor_name; the registry is cross-checked only to attach a
//     category, never to override the name;
//  2. known-domain table on the sender domain;
//  3. registry match on the subject text;
//  4. capitalized first label of the sender domain.
//
// The ordering prevents a generic mail-provider domain from ever becoming the
// vendor identity while better signal exists.
func ResolveVendor(fields *llm.SubscriptionFields, subject, senderDomain string) ResolvedVendor {
	senderDomain = strings.ToLower(strings.TrimSpace(senderDomain))

	if fields != nil && strings.TrimSpace(fields.VendorName) != "" {
		name := strings.TrimSpace(fields.VendorName)
		category := ""
		if m, ok := patterns.DetectSaaSVendor(name); ok {
			category = m.Category
		}
		return ResolvedVendor{
			Name:     name,
			Domain:   resolveDomain(fields, name, senderDomain),
			Category: category,
		}
	}

	if !patterns.IsGenericDomain(senderDomain) {
		if m, ok := patterns.LookupDomain(senderDomain); ok {
			return ResolvedVendor{Name: m.Name, Domain: senderDomain, Category: m.Category}
		}
	}

	if m, ok := patterns.DetectSaaSVendor(subject); ok {
		return ResolvedVendor{
			Name:     m.Name,
			Domain:   resolveDomain(fields, m.Name, senderDomain),
			Category: m.Category,
		}
	}

	if label := firstDomainLabel(senderDomain); label != "" && !patterns.IsGenericDomain(senderDomain) {
		return ResolvedVendor{
			Name:   domainCaser.String(label),
			Domain: senderDomain,
		}
	}
	return ResolvedVendor{}
}

// resolveDomain picks the vendor domain: the extracted vendor_domain when
// present, a synthesized "<name>.com" guess when the sender domain is a
// generic consumer provider, otherwise the sender domain itself.
func resolveDomain(fields *llm.SubscriptionFields, name, senderDomain string) string {
	if fields != nil && strings.TrimSpace(fields.VendorDomain) != "" {
		return strings.ToLower(strings.TrimSpace(fields.VendorDomain))
	}
	if patterns.IsGenericDomain(senderDomain) || senderDomain == "" {
		guess := strings.ReplaceAll(patterns.NormalizeVendorName(name), " ", "")
		if guess == "" {
			return ""
		}
		return guess + ".com"
	}
	return senderDomain
}

func firstDomainLabel(domain string) string {
	if domain == "" {
		return ""
	}
	return strings.SplitN(domain, ".", 2)[0]
}

// ConfidenceFromSignals maps a signal count onto the stored confidence tag.
func ConfidenceFromSignals(n int) constants.Confidence {
	switch {
	case n >= 3:
		return constants.ConfidenceHigh
	case n == 2:
		return constants.ConfidenceMedium
	default:
		return constants.ConfidenceLow
	}
}
