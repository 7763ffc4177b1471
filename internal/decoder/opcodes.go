// Package decoder implements the single-pass bytecode decoder: it turns a
// flat byte sequence into the ordered vm.Operator list a Runner executes,
// grounded on original_source/src/expr/operator_vector.cc's switch-based
// OperatorVector::Decode.
package decoder

// Opcode byte values, grouped by class (high nibble) per spec.md's operator
// encoding table and operator_vector.cc's named Byte constants.
const (
	eoe = 0x00

	nullPrefix  = 0x00
	constPrefix = 0x10
	constNPrefix = 0x20
	varIPrefix  = 0x30

	pos = 0x81
	neg = 0x82
	add = 0x83
	sub = 0x84
	mul = 0x85
	div = 0x86
	mod = 0x87

	eq = 0x91
	ge = 0x92
	gt = 0x93
	le = 0x94
	lt = 0x95
	ne = 0x96

	isNull  = 0xA1
	isTrue  = 0xA2
	isFalse = 0xA3

	min    = 0xB1
	max    = 0xB2
	abs    = 0xB3
	absC = 0xB4

	not = 0x51
	and = 0x52
	or  = 0x53

	cast   = 0xF0
	castC = 0xFC
	fun    = 0xF1
)
