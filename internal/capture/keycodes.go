package capture

// Linux input-event-codes for the keys we name. Printable keys carry their
// unshifted character; everything else carries a symbolic name.
type keyInfo struct {
	char rune
	name string
}

var keyCodes = map[uint16]keyInfo{
	1:   {name: "esc"},
	2:   {char: '1'},
	3:   {char: '2'},
	4:   {char: '3'},
	5:   {char: '4'},
	6:   {char: '5'},
	7:   {char: '6'},
	8:   {char: '7'},
	9:   {char: '8'},
	10:  {char: '9'},
	11:  {char: '0'},
	12:  {char: '-'},
	13:  {char: '='},
	14:  {name: "backspace"},
	15:  {name: "tab"},
	16:  {char: 'q'},
	17:  {char: 'w'},
	18:  {char: 'e'},
	19:  {char: 'r'},
	20:  {char: 't'},
	21:  {char: 'y'},
	22:  {char: 'u'},
	23:  {char: 'i'},
	24:  {char: 'o'},
	25:  {char: 'p'},
	26:  {char: '['},
	27:  {char: ']'},
	28:  {name: "enter"},
	29:  {name: "ctrl_l"},
	30:  {char: 'a'},
	31:  {char: 's'},
	32:  {char: 'd'},
	33:  {char: 'f'},
	34:  {char: 'g'},
	35:  {char: 'h'},
	36:  {char: 'j'},
	37:  {char: 'k'},
	38:  {char: 'l'},
	39:  {char: ';'},
	40:  {char: '\''},
	41:  {char: '`'},
	42:  {name: "shift"},
	43:  {char: '\\'},
	44:  {char: 'z'},
	45:  {char: 'x'},
	46:  {char: 'c'},
	47:  {char: 'v'},
	48:  {char: 'b'},
	49:  {char: 'n'},
	50:  {char: 'm'},
	51:  {char: ','},
	52:  {char: '.'},
	53:  {char: '/'},
	54:  {name: "shift_r"},
	55:  {char: '*'},
	56:  {name: "alt_l"},
	57:  {name: "space"},
	58:  {name: "caps_lock"},
	59:  {name: "f1"},
	60:  {name: "f2"},
	61:  {name: "f3"},
	62:  {name: "f4"},
	63:  {name: "f5"},
	64:  {name: "f6"},
	65:  {name: "f7"},
	66:  {name: "f8"},
	67:  {name: "f9"},
	68:  {name: "f10"},
	69:  {name: "num_lock"},
	70:  {name: "scroll_lock"},
	71:  {char: '7'},
	72:  {char: '8'},
	73:  {char: '9'},
	74:  {char: '-'},
	75:  {char: '4'},
	76:  {char: '5'},
	77:  {char: '6'},
	78:  {char: '+'},
	79:  {char: '1'},
	80:  {char: '2'},
	81:  {char: '3'},
	82:  {char: '0'},
	83:  {char: '.'},
	87:  {name: "f11"},
	88:  {name: "f12"},
	96:  {name: "enter"},
	97:  {name: "ctrl_r"},
	98:  {char: '/'},
	99:  {name: "print_screen"},
	100: {name: "alt_r"},
	102: {name: "home"},
	103: {name: "up"},
	104: {name: "page_up"},
	105: {name: "left"},
	106: {name: "right"},
	107: {name: "end"},
	108: {name: "down"},
	109: {name: "page_down"},
	110: {name: "insert"},
	111: {name: "delete"},
	113: {name: "media_volume_mute"},
	114: {name: "media_volume_down"},
	115: {name: "media_volume_up"},
	119: {name: "pause"},
	125: {name: "cmd"},
	126: {name: "cmd_r"},
	127: {name: "menu"},
	163: {name: "media_next"},
	164: {name: "media_play_pause"},
	165: {name: "media_previous"},
	183: {name: "f13"},
	184: {name: "f14"},
	185: {name: "f15"},
}

var buttonCodes = map[uint16]string{
	0x110: "left",
	0x111: "right",
	0x112: "middle",
	0x113: "x1",
	0x114: "x2",
}
