package debugui

import (
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/plus3/blockfall/tetris"
)

// FieldInfo describes one exported struct field shown by the inspector.
type FieldInfo struct {
	Name      string
	Type      reflect.Type
	Index     int
	IsPointer bool
	IsStruct  bool
}

// ReflectionCache memoizes the exported fields of component types.
type ReflectionCache struct {
	mu         sync.RWMutex
	fieldCache map[reflect.Type][]FieldInfo
}

func NewReflectionCache() *ReflectionCache {
	return &ReflectionCache{
		fieldCache: make(map[reflect.Type][]FieldInfo),
	}
}

// GetFields returns the exported fields of t, or nil for non-struct types.
func (rc *ReflectionCache) GetFields(t reflect.Type) []FieldInfo {
	rc.mu.RLock()
	cached, ok := rc.fieldCache[t]
	rc.mu.RUnlock()
	if ok {
		return cached
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()

	if cached, ok := rc.fieldCache[t]; ok {
		return cached
	}

	var fields []FieldInfo
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}

			fieldType := field.Type
			isPointer := fieldType.Kind() == reflect.Ptr
			if isPointer {
				fieldType = fieldType.Elem()
			}

			fields = append(fields, FieldInfo{
				Name:      field.Name,
				Type:      fieldType,
				Index:     i,
				IsPointer: isPointer,
				IsStruct:  fieldType.Kind() == reflect.Struct,
			})
		}
	}

	rc.fieldCache[t] = fields
	return fields
}

var globalReflectionCache = NewReflectionCache()

// formatValue renders a leaf value on one line. It reports false for structs
// the inspector should expand instead.
func formatValue(val reflect.Value) (string, bool) {
	if !val.IsValid() {
		return "<invalid>", true
	}

	switch val.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice:
		if val.IsNil() {
			return "nil", true
		}
	}

	if val.CanInterface() {
		switch v := val.Interface().(type) {
		case *tetris.Engine:
			return fmt.Sprintf("%s, score %d, lines %d, level %d", v.State(), v.Score(), v.Lines(), v.Level()), true
		case time.Duration:
			return v.Round(time.Millisecond).String(), true
		case fmt.Stringer:
			return v.String(), true
		}
	}

	switch val.Kind() {
	case reflect.Ptr:
		return formatValue(val.Elem())
	case reflect.Struct:
		if len(globalReflectionCache.GetFields(val.Type())) > 0 {
			return "", false
		}
		return val.Type().String(), true
	case reflect.Slice, reflect.Array:
		return fmt.Sprintf("[%d items]", val.Len()), true
	case reflect.Map:
		return fmt.Sprintf("map[%d items]", val.Len()), true
	case reflect.Float32, reflect.Float64:
		return fmt.Sprintf("%.3f", val.Float()), true
	}
	if val.CanInterface() {
		return fmt.Sprintf("%v", val.Interface()), true
	}
	return val.Type().String(), true
}
