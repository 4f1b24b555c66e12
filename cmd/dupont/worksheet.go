// Copyright (c) 2023 Colin McRae

package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/DanielRobertNicoud/dupont-contraction/formerr"
	"github.com/DanielRobertNicoud/dupont-contraction/operad"
)

// worksheet is a YAML file of named forms and the operations to evaluate on
// them, e.g.
//
//	geometry: cubical
//	dimension: 2
//	forms:
//	  a: {terms: {"1,0": 1}}
//	  b: {terms: {"2,0": "1/2"}}
//	operations:
//	  - {name: l2, op: ainfinity, forms: [a, b]}
//
// A form may override the geometry and dimension of the worksheet.
type worksheet struct {
	Geometry   string              `yaml:"geometry" validate:"required,oneof=simplicial cubical"`
	Dimension  int                 `yaml:"dimension" validate:"min=0,max=16"`
	Forms      map[string]formSpec `yaml:"forms" validate:"required,min=1,dive"`
	Operations []operation         `yaml:"operations" validate:"required,min=1,dive"`
}

type formSpec struct {
	Geometry  string         `yaml:"geometry" validate:"omitempty,oneof=simplicial cubical"`
	Dimension *int           `yaml:"dimension" validate:"omitempty,min=0,max=16"`
	Terms     map[string]any `yaml:"terms" validate:"required,min=1"`
}

type operation struct {
	Name  string   `yaml:"name" validate:"required"`
	Op    string   `yaml:"op" validate:"required,oneof=ainfinity d i"`
	Forms []string `yaml:"forms" validate:"required,min=1,dive,required"`
}

var worksheetValidate = validator.New()

func loadWorksheet(path string) (*worksheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loadWorksheet: %w", err)
	}
	return parseWorksheet(data)
}

// parseWorksheet decodes and validates a worksheet. Unknown fields are
// errors.
func parseWorksheet(data []byte) (*worksheet, error) {
	var ws worksheet
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&ws); err != nil {
		return nil, formerr.InvalidArgumentType("parseWorksheet", "%s", err.Error())
	}
	if err := worksheetValidate.Struct(&ws); err != nil {
		return nil, formerr.InvalidArgumentType("parseWorksheet", "%s", err.Error())
	}
	return &ws, nil
}

// result is the value of one operation of a worksheet.
type result struct {
	name  string
	op    string
	value string
}

// evaluate runs the operations in order. The forms of one operation must
// share a geometry.
func (ws *worksheet) evaluate(opts ...operad.Option) ([]result, error) {
	const caller = "worksheet.evaluate"
	retVal := make([]result, 0, len(ws.Operations))
	for _, op := range ws.Operations {
		geometryName := ""
		forms := make([]formValue, len(op.Forms))
		for i, name := range op.Forms {
			spec, ok := ws.Forms[name]
			if !ok {
				return nil, formerr.InvalidArgumentType(caller, "operation %q uses undefined form %q", op.Name, name)
			}
			formGeometry := ws.Geometry
			if spec.Geometry != "" {
				formGeometry = spec.Geometry
			}
			if geometryName != "" && formGeometry != geometryName {
				return nil, formerr.TypeMismatch(
					caller, "operation %q mixes %s and %s forms", op.Name, geometryName, formGeometry,
				)
			}
			geometryName = formGeometry
			forms[i] = formValue{dim: ws.Dimension, terms: spec.Terms}
			if spec.Dimension != nil {
				forms[i].dim = *spec.Dimension
			}
		}
		g, err := lookupGeometry(geometryName)
		if err != nil {
			return nil, err
		}
		value, err := g.evaluate(op.Op, forms, opts...)
		if err != nil {
			return nil, fmt.Errorf("%s: operation %q: %w", caller, op.Name, err)
		}
		retVal = append(retVal, result{name: op.Name, op: op.Op, value: value})
	}
	return retVal, nil
}
