// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package personname

// FieldNames lists the record fields in their fixed output order.
var FieldNames = []string{"full_name", "prefix", "first", "middle", "last", "suffix"}

// Record holds the decomposed parts of one full name. Every field defaults to
// the empty string; FullName is the trimmed input as given.
type Record struct {
	FullName string `json:"full_name" yaml:"full_name"`
	Prefix   string `json:"prefix" yaml:"prefix"`
	First    string `json:"first" yaml:"first"`
	Middle   string `json:"middle" yaml:"middle"`
	Last     string `json:"last" yaml:"last"`
	Suffix   string `json:"suffix" yaml:"suffix"`
}

// Values returns the field values in FieldNames order.
func (r Record) Values() []string {
	return []string{r.FullName, r.Prefix, r.First, r.Middle, r.Last, r.Suffix}
}

// IsEmpty reports whether no component besides FullName was recovered.
func (r Record) IsEmpty() bool {
	return r.Prefix == "" && r.First == "" && r.Middle == "" && r.Last == "" && r.Suffix == ""
}

// Method describes how a record was produced.
type Method string

const (
	MethodParsed        Method = "parsed"
	MethodFallbackSplit Method = "fallback_split"
	MethodFallbackEmpty Method = "fallback_empty"
	MethodNickname      Method = "nickname"
)

// Analysis pairs a record with the method that produced it.
type Analysis struct {
	Record Record
	Method Method
}
