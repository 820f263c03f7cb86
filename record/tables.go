package record

// Tables holds the four record tables that make up a NIBArchive's logical
// content, in canonical section order: objects, keys, values, classNames.
type Tables struct {
	Objects    []Object
	Keys       []Key
	Values     []Value
	ClassNames []ClassName
}
