package utils

import "reflect"

// ColumnTag is the struct tag the stores read column names from.
var ColumnTag = "db"

// StructTagValues lists the db-tagged column names of a struct, in field
// order. Feeds squirrel column lists so queries stay in lockstep with the
// model definitions.
func StructTagValues(input any) []string {
	v, t := structOf(input)

	result := make([]string, 0, v.NumField())
	for i := 0; i < v.NumField(); i++ {
		if tag, ok := columnName(t.Field(i)); ok {
			result = append(result, tag)
		}
	}

	return result
}

// StructToMap maps db-tagged column names to the struct's field values,
// the shape squirrel's SetMap wants for inserts.
func StructToMap(input any) map[string]any {
	v, t := structOf(input)

	result := make(map[string]any, v.NumField())
	for i := 0; i < v.NumField(); i++ {
		if tag, ok := columnName(t.Field(i)); ok {
			result[tag] = v.Field(i).Interface()
		}
	}

	return result
}

func structOf(input any) (reflect.Value, reflect.Type) {
	v := reflect.ValueOf(input)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		panic("input must be a struct or a pointer to a struct")
	}

	return v, v.Type()
}

func columnName(field reflect.StructField) (string, bool) {
	if field.PkgPath != "" {
		return "", false
	}

	tag := field.Tag.Get(ColumnTag)
	if tag == "" || tag == "-" {
		return "", false
	}

	return tag, true
}
