// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package catalog

import (
	"regexp"
	"strings"

	"github.com/poiesic/indexit/core"
)

// SpecValue is the tagged result of one attribute lookup. Found
// distinguishes a genuinely extracted value from an absent one, so an
// empty string is never ambiguous.
type SpecValue struct {
	Value string
	Found bool
}

// specRule pairs a candidate label with a transform applied to the
// label's value. Rules are evaluated in priority order; the first rule
// whose label is present and whose transform succeeds wins.
type specRule struct {
	label     string
	transform func(string) (string, bool)
}

var (
	// Size pattern for memory, e.g. "16GB DDR5" inside a longer blob.
	ramPattern = regexp.MustCompile(`(?i)(\d+GB\s*(?:DDR\d+)?)`)

	// Size pattern for storage, e.g. "512GB NVMe SSD".
	storagePattern = regexp.MustCompile(`(?i)(\d+(?:GB|TB)\s*(?:NVMe|SSD|HDD)?)`)
)

// firstLine keeps only the first line of a value. Text after the first
// line is warranty/footnote boilerplate in the source data.
func firstLine(value string) (string, bool) {
	if value == "" {
		return "", false
	}
	line, _, _ := strings.Cut(value, "\n")
	return line, true
}

// matchPattern extracts the first submatch of pattern from the value.
// An unmatched but present value reports absence rather than the raw
// text: precision over recall.
func matchPattern(pattern *regexp.Regexp) func(string) (string, bool) {
	return func(value string) (string, bool) {
		match := pattern.FindStringSubmatch(value)
		if match == nil {
			return "", false
		}
		return match[1], true
	}
}

var (
	processorRules = []specRule{
		{"Processor", firstLine},
	}
	ramRules = []specRule{
		{"RAM", matchPattern(ramPattern)},
		{"Memory", matchPattern(ramPattern)},
		{"Ram", matchPattern(ramPattern)},
	}
	graphicsRules = []specRule{
		{"Graphics Card", firstLine},
		{"Graphics", firstLine},
		{"GPU", firstLine},
		{"Display", firstLine},
	}
	storageRules = []specRule{
		{"Storage", matchPattern(storagePattern)},
		{"SSD", matchPattern(storagePattern)},
		{"Hard Drive", matchPattern(storagePattern)},
		{"HDD", matchPattern(storagePattern)},
	}
)

// extractAttribute evaluates rules against the blob in priority order.
// A lower-priority label is only consulted when every higher-priority
// rule either has no value in the blob or fails its transform; matched
// values from different labels are never merged.
func extractAttribute(blob map[string]string, rules []specRule) SpecValue {
	for _, rule := range rules {
		value, present := blob[rule.label]
		if !present || value == "" {
			continue
		}
		if extracted, ok := rule.transform(value); ok {
			return SpecValue{Value: extracted, Found: true}
		}
	}
	return SpecValue{}
}

// ExtractSpecs pulls structured processor, memory, graphics, and
// storage attributes out of a free-text specification blob. A nil or
// empty blob yields all-absent attributes.
func ExtractSpecs(blob map[string]string) core.Specs {
	if len(blob) == 0 {
		return core.Specs{}
	}

	specs := core.Specs{}
	if v := extractAttribute(blob, processorRules); v.Found {
		specs.Processor = v.Value
	}
	if v := extractAttribute(blob, ramRules); v.Found {
		specs.RAM = v.Value
	}
	if v := extractAttribute(blob, graphicsRules); v.Found {
		specs.Graphics = v.Value
	}
	if v := extractAttribute(blob, storageRules); v.Found {
		specs.Storage = v.Value
	}
	return specs
}
