package testlog

import "github.com/sirkon/errors"

type field struct {
	name  string
	value any
}

// fields контекст ошибки в порядке доставки.
type fields []field

func (fs *fields) put(name string, value any) {
	*fs = append(*fs, field{name: name, value: value})
}

func (fs *fields) Bool(name string, value bool) { fs.put(name, value) }
func (fs *fields) Int(name string, value int) { fs.put(name, value) }
func (fs *fields) Int8(name string, value int8) { fs.put(name, value) }
func (fs *fields) Int16(name string, value int16) { fs.put(name, value) }
func (fs *fields) Int32(name string, value int32) { fs.put(name, value) }
func (fs *fields) Int64(name string, value int64) { fs.put(name, value) }
func (fs *fields) Uint(name string, value uint) { fs.put(name, value) }
func (fs *fields) Uint8(name string, value uint8) { fs.put(name, value) }
func (fs *fields) Uint16(name string, value uint16) { fs.put(name, value) }
func (fs *fields) Uint32(name string, value uint32) { fs.put(name, value) }
func (fs *fields) Uint64(name string, value uint64) { fs.put(name, value) }
func (fs *fields) Float32(name string, value float32) { fs.put(name, value) }
func (fs *fields) Float64(name string, value float64) { fs.put(name, value) }
func (fs *fields) String(name string, value string) { fs.put(name, value) }
func (fs *fields) Any(name string, value any) { fs.put(name, value) }

var _ errors.ErrorContextConsumer = &fields{}
