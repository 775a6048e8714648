// This file is part of Scimitar.
//
// Scimitar is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Scimitar is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Scimitar.  If not, see <https://www.gnu.org/licenses/>.

package instructions

// definitions of the primary opcode space. the Cycles field is filled in
// from CycleCounts during init().
var definitions = [256]Definition{
	{OpCode: 0x00, Mnemonic: "NOP", Bytes: 1, Category: Control, Defined: true},
	{OpCode: 0x01, Mnemonic: "LD BC,d16", Bytes: 3, Category: Load, Defined: true},
	{OpCode: 0x02, Mnemonic: "LD (BC),A", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x03, Mnemonic: "INC BC", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x04, Mnemonic: "INC B", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x05, Mnemonic: "DEC B", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x06, Mnemonic: "LD B,d8", Bytes: 2, Category: Load, Defined: true},
	{OpCode: 0x07, Mnemonic: "RLCA", Bytes: 1, Category: Bits, Defined: true},
	{OpCode: 0x08, Mnemonic: "LD (a16),SP", Bytes: 3, Category: Load, Defined: true},
	{OpCode: 0x09, Mnemonic: "ADD HL,BC", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x0a, Mnemonic: "LD A,(BC)", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x0b, Mnemonic: "DEC BC", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x0c, Mnemonic: "INC C", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x0d, Mnemonic: "DEC C", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x0e, Mnemonic: "LD C,d8", Bytes: 2, Category: Load, Defined: true},
	{OpCode: 0x0f, Mnemonic: "RRCA", Bytes: 1, Category: Bits, Defined: true},
	{OpCode: 0x10, Mnemonic: "STOP", Bytes: 2, Category: Control, Defined: true},
	{OpCode: 0x11, Mnemonic: "LD DE,d16", Bytes: 3, Category: Load, Defined: true},
	{OpCode: 0x12, Mnemonic: "LD (DE),A", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x13, Mnemonic: "INC DE", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x14, Mnemonic: "INC D", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x15, Mnemonic: "DEC D", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x16, Mnemonic: "LD D,d8", Bytes: 2, Category: Load, Defined: true},
	{OpCode: 0x17, Mnemonic: "RLA", Bytes: 1, Category: Bits, Defined: true},
	{OpCode: 0x18, Mnemonic: "JR r8", Bytes: 2, Category: Flow, Defined: true},
	{OpCode: 0x19, Mnemonic: "ADD HL,DE", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x1a, Mnemonic: "LD A,(DE)", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x1b, Mnemonic: "DEC DE", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x1c, Mnemonic: "INC E", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x1d, Mnemonic: "DEC E", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x1e, Mnemonic: "LD E,d8", Bytes: 2, Category: Load, Defined: true},
	{OpCode: 0x1f, Mnemonic: "RRA", Bytes: 1, Category: Bits, Defined: true},
	{OpCode: 0x20, Mnemonic: "JR NZ,r8", Bytes: 2, Category: Flow, ExtraCycles: 4, Defined: true},
	{OpCode: 0x21, Mnemonic: "LD HL,d16", Bytes: 3, Category: Load, Defined: true},
	{OpCode: 0x22, Mnemonic: "LD (HL+),A", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x23, Mnemonic: "INC HL", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x24, Mnemonic: "INC H", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x25, Mnemonic: "DEC H", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x26, Mnemonic: "LD H,d8", Bytes: 2, Category: Load, Defined: true},
	{OpCode: 0x27, Mnemonic: "DAA", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x28, Mnemonic: "JR Z,r8", Bytes: 2, Category: Flow, ExtraCycles: 4, Defined: true},
	{OpCode: 0x29, Mnemonic: "ADD HL,HL", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x2a, Mnemonic: "LD A,(HL+)", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x2b, Mnemonic: "DEC HL", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x2c, Mnemonic: "INC L", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x2d, Mnemonic: "DEC L", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x2e, Mnemonic: "LD L,d8", Bytes: 2, Category: Load, Defined: true},
	{OpCode: 0x2f, Mnemonic: "CPL", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x30, Mnemonic: "JR NC,r8", Bytes: 2, Category: Flow, ExtraCycles: 4, Defined: true},
	{OpCode: 0x31, Mnemonic: "LD SP,d16", Bytes: 3, Category: Load, Defined: true},
	{OpCode: 0x32, Mnemonic: "LD (HL-),A", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x33, Mnemonic: "INC SP", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x34, Mnemonic: "INC (HL)", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x35, Mnemonic: "DEC (HL)", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x36, Mnemonic: "LD (HL),d8", Bytes: 2, Category: Load, Defined: true},
	{OpCode: 0x37, Mnemonic: "SCF", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x38, Mnemonic: "JR C,r8", Bytes: 2, Category: Flow, ExtraCycles: 4, Defined: true},
	{OpCode: 0x39, Mnemonic: "ADD HL,SP", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x3a, Mnemonic: "LD A,(HL-)", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x3b, Mnemonic: "DEC SP", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x3c, Mnemonic: "INC A", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x3d, Mnemonic: "DEC A", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x3e, Mnemonic: "LD A,d8", Bytes: 2, Category: Load, Defined: true},
	{OpCode: 0x3f, Mnemonic: "CCF", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x40, Mnemonic: "LD B,B", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x41, Mnemonic: "LD B,C", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x42, Mnemonic: "LD B,D", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x43, Mnemonic: "LD B,E", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x44, Mnemonic: "LD B,H", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x45, Mnemonic: "LD B,L", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x46, Mnemonic: "LD B,(HL)", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x47, Mnemonic: "LD B,A", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x48, Mnemonic: "LD C,B", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x49, Mnemonic: "LD C,C", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x4a, Mnemonic: "LD C,D", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x4b, Mnemonic: "LD C,E", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x4c, Mnemonic: "LD C,H", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x4d, Mnemonic: "LD C,L", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x4e, Mnemonic: "LD C,(HL)", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x4f, Mnemonic: "LD C,A", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x50, Mnemonic: "LD D,B", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x51, Mnemonic: "LD D,C", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x52, Mnemonic: "LD D,D", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x53, Mnemonic: "LD D,E", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x54, Mnemonic: "LD D,H", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x55, Mnemonic: "LD D,L", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x56, Mnemonic: "LD D,(HL)", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x57, Mnemonic: "LD D,A", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x58, Mnemonic: "LD E,B", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x59, Mnemonic: "LD E,C", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x5a, Mnemonic: "LD E,D", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x5b, Mnemonic: "LD E,E", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x5c, Mnemonic: "LD E,H", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x5d, Mnemonic: "LD E,L", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x5e, Mnemonic: "LD E,(HL)", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x5f, Mnemonic: "LD E,A", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x60, Mnemonic: "LD H,B", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x61, Mnemonic: "LD H,C", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x62, Mnemonic: "LD H,D", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x63, Mnemonic: "LD H,E", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x64, Mnemonic: "LD H,H", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x65, Mnemonic: "LD H,L", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x66, Mnemonic: "LD H,(HL)", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x67, Mnemonic: "LD H,A", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x68, Mnemonic: "LD L,B", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x69, Mnemonic: "LD L,C", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x6a, Mnemonic: "LD L,D", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x6b, Mnemonic: "LD L,E", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x6c, Mnemonic: "LD L,H", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x6d, Mnemonic: "LD L,L", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x6e, Mnemonic: "LD L,(HL)", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x6f, Mnemonic: "LD L,A", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x70, Mnemonic: "LD (HL),B", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x71, Mnemonic: "LD (HL),C", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x72, Mnemonic: "LD (HL),D", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x73, Mnemonic: "LD (HL),E", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x74, Mnemonic: "LD (HL),H", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x75, Mnemonic: "LD (HL),L", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x76, Mnemonic: "HALT", Bytes: 1, Category: Control, Defined: true},
	{OpCode: 0x77, Mnemonic: "LD (HL),A", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x78, Mnemonic: "LD A,B", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x79, Mnemonic: "LD A,C", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x7a, Mnemonic: "LD A,D", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x7b, Mnemonic: "LD A,E", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x7c, Mnemonic: "LD A,H", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x7d, Mnemonic: "LD A,L", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x7e, Mnemonic: "LD A,(HL)", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x7f, Mnemonic: "LD A,A", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0x80, Mnemonic: "ADD A,B", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x81, Mnemonic: "ADD A,C", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x82, Mnemonic: "ADD A,D", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x83, Mnemonic: "ADD A,E", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x84, Mnemonic: "ADD A,H", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x85, Mnemonic: "ADD A,L", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x86, Mnemonic: "ADD A,(HL)", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x87, Mnemonic: "ADD A,A", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x88, Mnemonic: "ADC A,B", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x89, Mnemonic: "ADC A,C", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x8a, Mnemonic: "ADC A,D", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x8b, Mnemonic: "ADC A,E", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x8c, Mnemonic: "ADC A,H", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x8d, Mnemonic: "ADC A,L", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x8e, Mnemonic: "ADC A,(HL)", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x8f, Mnemonic: "ADC A,A", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x90, Mnemonic: "SUB B", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x91, Mnemonic: "SUB C", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x92, Mnemonic: "SUB D", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x93, Mnemonic: "SUB E", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x94, Mnemonic: "SUB H", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x95, Mnemonic: "SUB L", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x96, Mnemonic: "SUB (HL)", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x97, Mnemonic: "SUB A", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x98, Mnemonic: "SBC A,B", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x99, Mnemonic: "SBC A,C", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x9a, Mnemonic: "SBC A,D", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x9b, Mnemonic: "SBC A,E", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x9c, Mnemonic: "SBC A,H", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x9d, Mnemonic: "SBC A,L", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x9e, Mnemonic: "SBC A,(HL)", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0x9f, Mnemonic: "SBC A,A", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0xa0, Mnemonic: "AND B", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0xa1, Mnemonic: "AND C", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0xa2, Mnemonic: "AND D", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0xa3, Mnemonic: "AND E", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0xa4, Mnemonic: "AND H", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0xa5, Mnemonic: "AND L", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0xa6, Mnemonic: "AND (HL)", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0xa7, Mnemonic: "AND A", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0xa8, Mnemonic: "XOR B", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0xa9, Mnemonic: "XOR C", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0xaa, Mnemonic: "XOR D", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0xab, Mnemonic: "XOR E", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0xac, Mnemonic: "XOR H", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0xad, Mnemonic: "XOR L", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0xae, Mnemonic: "XOR (HL)", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0xaf, Mnemonic: "XOR A", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0xb0, Mnemonic: "OR B", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0xb1, Mnemonic: "OR C", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0xb2, Mnemonic: "OR D", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0xb3, Mnemonic: "OR E", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0xb4, Mnemonic: "OR H", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0xb5, Mnemonic: "OR L", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0xb6, Mnemonic: "OR (HL)", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0xb7, Mnemonic: "OR A", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0xb8, Mnemonic: "CP B", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0xb9, Mnemonic: "CP C", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0xba, Mnemonic: "CP D", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0xbb, Mnemonic: "CP E", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0xbc, Mnemonic: "CP H", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0xbd, Mnemonic: "CP L", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0xbe, Mnemonic: "CP (HL)", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0xbf, Mnemonic: "CP A", Bytes: 1, Category: ALU, Defined: true},
	{OpCode: 0xc0, Mnemonic: "RET NZ", Bytes: 1, Category: Subroutine, ExtraCycles: 12, Defined: true},
	{OpCode: 0xc1, Mnemonic: "POP BC", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0xc2, Mnemonic: "JP NZ,a16", Bytes: 3, Category: Flow, ExtraCycles: 4, Defined: true},
	{OpCode: 0xc3, Mnemonic: "JP a16", Bytes: 3, Category: Flow, Defined: true},
	{OpCode: 0xc4, Mnemonic: "CALL NZ,a16", Bytes: 3, Category: Subroutine, ExtraCycles: 12, Defined: true},
	{OpCode: 0xc5, Mnemonic: "PUSH BC", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0xc6, Mnemonic: "ADD A,d8", Bytes: 2, Category: ALU, Defined: true},
	{OpCode: 0xc7, Mnemonic: "RST 00H", Bytes: 1, Category: Subroutine, Defined: true},
	{OpCode: 0xc8, Mnemonic: "RET Z", Bytes: 1, Category: Subroutine, ExtraCycles: 12, Defined: true},
	{OpCode: 0xc9, Mnemonic: "RET", Bytes: 1, Category: Subroutine, Defined: true},
	{OpCode: 0xca, Mnemonic: "JP Z,a16", Bytes: 3, Category: Flow, ExtraCycles: 4, Defined: true},
	{OpCode: 0xcb, Mnemonic: "PREFIX CB", Bytes: 2, Category: Bits, Defined: true},
	{OpCode: 0xcc, Mnemonic: "CALL Z,a16", Bytes: 3, Category: Subroutine, ExtraCycles: 12, Defined: true},
	{OpCode: 0xcd, Mnemonic: "CALL a16", Bytes: 3, Category: Subroutine, Defined: true},
	{OpCode: 0xce, Mnemonic: "ADC A,d8", Bytes: 2, Category: ALU, Defined: true},
	{OpCode: 0xcf, Mnemonic: "RST 08H", Bytes: 1, Category: Subroutine, Defined: true},
	{OpCode: 0xd0, Mnemonic: "RET NC", Bytes: 1, Category: Subroutine, ExtraCycles: 12, Defined: true},
	{OpCode: 0xd1, Mnemonic: "POP DE", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0xd2, Mnemonic: "JP NC,a16", Bytes: 3, Category: Flow, ExtraCycles: 4, Defined: true},
	{OpCode: 0xd3, Mnemonic: "UNDEFINED", Bytes: 1, Category: Control},
	{OpCode: 0xd4, Mnemonic: "CALL NC,a16", Bytes: 3, Category: Subroutine, ExtraCycles: 12, Defined: true},
	{OpCode: 0xd5, Mnemonic: "PUSH DE", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0xd6, Mnemonic: "SUB d8", Bytes: 2, Category: ALU, Defined: true},
	{OpCode: 0xd7, Mnemonic: "RST 10H", Bytes: 1, Category: Subroutine, Defined: true},
	{OpCode: 0xd8, Mnemonic: "RET C", Bytes: 1, Category: Subroutine, ExtraCycles: 12, Defined: true},
	{OpCode: 0xd9, Mnemonic: "RETI", Bytes: 1, Category: Subroutine, Defined: true},
	{OpCode: 0xda, Mnemonic: "JP C,a16", Bytes: 3, Category: Flow, ExtraCycles: 4, Defined: true},
	{OpCode: 0xdb, Mnemonic: "UNDEFINED", Bytes: 1, Category: Control},
	{OpCode: 0xdc, Mnemonic: "CALL C,a16", Bytes: 3, Category: Subroutine, ExtraCycles: 12, Defined: true},
	{OpCode: 0xdd, Mnemonic: "UNDEFINED", Bytes: 1, Category: Control},
	{OpCode: 0xde, Mnemonic: "SBC A,d8", Bytes: 2, Category: ALU, Defined: true},
	{OpCode: 0xdf, Mnemonic: "RST 18H", Bytes: 1, Category: Subroutine, Defined: true},
	{OpCode: 0xe0, Mnemonic: "LDH (a8),A", Bytes: 2, Category: Load, Defined: true},
	{OpCode: 0xe1, Mnemonic: "POP HL", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0xe2, Mnemonic: "LD (C),A", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0xe3, Mnemonic: "UNDEFINED", Bytes: 1, Category: Control},
	{OpCode: 0xe4, Mnemonic: "UNDEFINED", Bytes: 1, Category: Control},
	{OpCode: 0xe5, Mnemonic: "PUSH HL", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0xe6, Mnemonic: "AND d8", Bytes: 2, Category: ALU, Defined: true},
	{OpCode: 0xe7, Mnemonic: "RST 20H", Bytes: 1, Category: Subroutine, Defined: true},
	{OpCode: 0xe8, Mnemonic: "ADD SP,r8", Bytes: 2, Category: ALU, Defined: true},
	{OpCode: 0xe9, Mnemonic: "JP (HL)", Bytes: 1, Category: Flow, Defined: true},
	{OpCode: 0xea, Mnemonic: "LD (a16),A", Bytes: 3, Category: Load, Defined: true},
	{OpCode: 0xeb, Mnemonic: "UNDEFINED", Bytes: 1, Category: Control},
	{OpCode: 0xec, Mnemonic: "UNDEFINED", Bytes: 1, Category: Control},
	{OpCode: 0xed, Mnemonic: "UNDEFINED", Bytes: 1, Category: Control},
	{OpCode: 0xee, Mnemonic: "XOR d8", Bytes: 2, Category: ALU, Defined: true},
	{OpCode: 0xef, Mnemonic: "RST 28H", Bytes: 1, Category: Subroutine, Defined: true},
	{OpCode: 0xf0, Mnemonic: "LDH A,(a8)", Bytes: 2, Category: Load, Defined: true},
	{OpCode: 0xf1, Mnemonic: "POP AF", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0xf2, Mnemonic: "LD A,(C)", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0xf3, Mnemonic: "DI", Bytes: 1, Category: Control, Defined: true},
	{OpCode: 0xf4, Mnemonic: "UNDEFINED", Bytes: 1, Category: Control},
	{OpCode: 0xf5, Mnemonic: "PUSH AF", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0xf6, Mnemonic: "OR d8", Bytes: 2, Category: ALU, Defined: true},
	{OpCode: 0xf7, Mnemonic: "RST 30H", Bytes: 1, Category: Subroutine, Defined: true},
	{OpCode: 0xf8, Mnemonic: "LD HL,SP+r8", Bytes: 2, Category: ALU, Defined: true},
	{OpCode: 0xf9, Mnemonic: "LD SP,HL", Bytes: 1, Category: Load, Defined: true},
	{OpCode: 0xfa, Mnemonic: "LD A,(a16)", Bytes: 3, Category: Load, Defined: true},
	{OpCode: 0xfb, Mnemonic: "EI", Bytes: 1, Category: Control, Defined: true},
	{OpCode: 0xfc, Mnemonic: "UNDEFINED", Bytes: 1, Category: Control},
	{OpCode: 0xfd, Mnemonic: "UNDEFINED", Bytes: 1, Category: Control},
	{OpCode: 0xfe, Mnemonic: "CP d8", Bytes: 2, Category: ALU, Defined: true},
	{OpCode: 0xff, Mnemonic: "RST 38H", Bytes: 1, Category: Subroutine, Defined: true},
}
