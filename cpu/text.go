package cpu

const (
	TEXT_BASE      = 0x0040_0000 // Address of the first text segment word.
	WORD_SIZE      = 4           // Bytes per instruction word.
	REGISTER_COUNT = 32          // Size of the register file.

	MAX_PROG_LEN = 1024 // Maximum number of program lines.
	MAX_LINE_LEN = 256  // Maximum length of a single program line.
	MAX_ARG_LEN  = 64   // Maximum length of a label, mnemonic or operand word.
)

// TextAddress converts a text segment index into its byte address.
func TextAddress(index int) uint32 {
	return TEXT_BASE + uint32(index)*WORD_SIZE
}

// TextIndex converts a byte address into a text segment index.
// ok is false if the address is below the base or not word aligned.
func TextIndex(address uint32) (index int, ok bool) {
	if address < TEXT_BASE || (address-TEXT_BASE)%WORD_SIZE != 0 {
		return
	}

	return int((address - TEXT_BASE) / WORD_SIZE), true
}
