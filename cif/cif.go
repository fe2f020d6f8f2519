/*
 * cif.go, part of libcifpp.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package cif implements the record store the structural model is built
//on: named data blocks holding named categories of rows, with typed
//field access and predicate-based lookup. There is no file grammar here;
//blocks are built in memory, row by row.
package cif

import (
	"fmt"
	"strconv"
)

//A Row is a single record in a category. Fields hold their text
//representation; the typed accessors parse on demand. The two
//conventional "no value" markers, "." and "?", read back as the empty
//string.
type Row struct {
	fields map[string]string
}

//NewRow returns a row with a copy of the given fields.
func NewRow(fields map[string]string) *Row {
	f := make(map[string]string, len(fields))
	for k, v := range fields {
		f[k] = v
	}
	return &Row{fields: f}
}

//Has reports whether the field is present and carries a value.
func (r *Row) Has(field string) bool {
	v, ok := r.fields[field]
	return ok && v != "" && v != "." && v != "?"
}

//Str returns the text value of the field, or the empty string when the
//field is absent or holds one of the "no value" markers.
func (r *Row) Str(field string) string {
	v := r.fields[field]
	if v == "." || v == "?" {
		return ""
	}
	return v
}

//Int parses the field as an integer.
func (r *Row) Int(field string) (int, error) {
	v := r.Str(field)
	if v == "" {
		return 0, fmt.Errorf("cif: field %s has no value", field)
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("cif: field %s: %v", field, err)
	}
	return i, nil
}

//Float parses the field as a float64.
func (r *Row) Float(field string) (float64, error) {
	v := r.Str(field)
	if v == "" {
		return 0, fmt.Errorf("cif: field %s has no value", field)
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("cif: field %s: %v", field, err)
	}
	return f, nil
}

//SetStr sets the field to the given text value.
func (r *Row) SetStr(field, value string) {
	if r.fields == nil {
		r.fields = make(map[string]string)
	}
	r.fields[field] = value
}

//SetInt sets the field to the given integer.
func (r *Row) SetInt(field string, value int) {
	r.SetStr(field, strconv.Itoa(value))
}

//SetFloat sets the field to the given value, formatted with prec decimals.
func (r *Row) SetFloat(field string, value float64, prec int) {
	r.SetStr(field, strconv.FormatFloat(value, 'f', prec, 64))
}

//Clone returns an independent copy of the row.
func (r *Row) Clone() *Row {
	return NewRow(r.fields)
}

//A Predicate selects rows in a category.
type Predicate func(*Row) bool

//Eq returns a predicate matching rows whose field equals value.
func Eq(field, value string) Predicate {
	return func(r *Row) bool { return r.Str(field) == value }
}

//EqInt returns a predicate matching rows whose field parses to value.
func EqInt(field string, value int) Predicate {
	return func(r *Row) bool {
		i, err := r.Int(field)
		return err == nil && i == value
	}
}

//And returns a predicate matching rows that satisfy all given predicates.
func And(preds ...Predicate) Predicate {
	return func(r *Row) bool {
		for _, p := range preds {
			if !p(r) {
				return false
			}
		}
		return true
	}
}

//A Category is an ordered collection of rows sharing a name. Rows keep
//their insertion order.
type Category struct {
	name string
	rows []*Row
}

//Name returns the name of the category.
func (c *Category) Name() string { return c.name }

//Len returns the number of rows.
func (c *Category) Len() int { return len(c.rows) }

//Rows returns the rows in insertion order. The slice is the category's
//own; callers iterate, they do not reshape it.
func (c *Category) Rows() []*Row { return c.rows }

//Append adds a row with the given fields and returns it.
func (c *Category) Append(fields map[string]string) *Row {
	r := NewRow(fields)
	c.rows = append(c.rows, r)
	return r
}

//AppendRow adds an existing row to the category.
func (c *Category) AppendRow(r *Row) {
	c.rows = append(c.rows, r)
}

//First returns the first row matching the predicate, or nil.
func (c *Category) First(pred Predicate) *Row {
	for _, r := range c.rows {
		if pred(r) {
			return r
		}
	}
	return nil
}

//Find returns all rows matching the predicate, in insertion order.
func (c *Category) Find(pred Predicate) []*Row {
	var result []*Row
	for _, r := range c.rows {
		if pred(r) {
			result = append(result, r)
		}
	}
	return result
}

//Delete removes all rows matching the predicate and returns how many
//were removed.
func (c *Category) Delete(pred Predicate) int {
	kept := c.rows[:0]
	n := 0
	for _, r := range c.rows {
		if pred(r) {
			n++
			continue
		}
		kept = append(kept, r)
	}
	for i := len(kept); i < len(c.rows); i++ {
		c.rows[i] = nil
	}
	c.rows = kept
	return n
}

//DeleteRow removes the given row, matching by pointer identity.
func (c *Category) DeleteRow(row *Row) bool {
	for i, r := range c.rows {
		if r == row {
			c.rows = append(c.rows[:i], c.rows[i+1:]...)
			return true
		}
	}
	return false
}

//Clone returns an independent copy of the category and all its rows.
func (c *Category) Clone() *Category {
	n := &Category{name: c.name, rows: make([]*Row, len(c.rows))}
	for i, r := range c.rows {
		n.rows[i] = r.Clone()
	}
	return n
}

//A Datablock is a named set of categories. Categories come into being
//on first access and keep their creation order.
type Datablock struct {
	name  string
	cats  []*Category
	index map[string]*Category
}

//NewDatablock returns an empty datablock with the given name.
func NewDatablock(name string) *Datablock {
	return &Datablock{name: name, index: make(map[string]*Category)}
}

//Name returns the name of the datablock.
func (db *Datablock) Name() string { return db.name }

//Get returns the category with the given name, creating it if needed.
func (db *Datablock) Get(name string) *Category {
	if c, ok := db.index[name]; ok {
		return c
	}
	c := &Category{name: name}
	db.cats = append(db.cats, c)
	db.index[name] = c
	return c
}

//Has reports whether the datablock holds a non-empty category with the
//given name.
func (db *Datablock) Has(name string) bool {
	c, ok := db.index[name]
	return ok && c.Len() > 0
}

//Categories returns the categories in creation order.
func (db *Datablock) Categories() []*Category { return db.cats }

//Clone returns a fully independent copy of the datablock: new
//categories, new rows, new field maps.
func (db *Datablock) Clone() *Datablock {
	n := NewDatablock(db.name)
	for _, c := range db.cats {
		cc := c.Clone()
		n.cats = append(n.cats, cc)
		n.index[cc.name] = cc
	}
	return n
}
