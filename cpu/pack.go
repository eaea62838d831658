package cpu

// PackImmediate ORs a signed 16-bit value into bits 0-15.
func PackImmediate(code *Code, value int) (err error) {
	if value < -32768 || value > 32767 {
		err = ErrImmediateRange
		return
	}

	*code |= Code(uint32(value) & 0xffff)
	return
}

// PackShift ORs a shift amount in [0, 31] into bits 6-10.
func PackShift(code *Code, amount int) (err error) {
	if amount < 0 || amount > 31 {
		err = ErrShiftRange
		return
	}

	*code |= Code(uint32(amount) << 6)
	return
}

// PackRegister ORs the index of the named register at a bit offset.
func PackRegister(code *Code, name string, offset uint) (err error) {
	reg, ok := LookupRegister(name)
	if !ok {
		err = ErrRegisterInvalid
		return
	}

	*code |= Code(uint32(reg) << offset)
	return
}

// PackAddress ORs the word address of a byte address into bits 0-25.
func PackAddress(code *Code, address uint32) {
	*code |= Code((address >> 2) & 0x3ffffff)
}
