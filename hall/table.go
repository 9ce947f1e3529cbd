/*
 * table.go, part of spglib.
 *
 * Copyright 2015 Albert DeFusco
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
 */

package hall

//The space-group table, one entry per supported Hall setting. Settings
//follow the standard choices of the International Tables: unique axis b
//for monoclinic groups, origin choice 2 (inversion at the origin) for the
//two-origin groups, hexagonal axes for the rhombohedral groups. The Hall
//number of an entry is its 1-based index here.
var table = []Entry{
	{Number: 1, International: "P1", Symbol: "P 1"},
	{Number: 2, International: "P-1", Symbol: "-P 1"},
	{Number: 3, International: "P2", Symbol: "P 2y"},
	{Number: 4, International: "P2_1", Symbol: "P 2yb"},
	{Number: 5, International: "C2", Symbol: "C 2y"},
	{Number: 6, International: "Pm", Symbol: "P -2y"},
	{Number: 7, International: "Pc", Symbol: "P -2yc"},
	{Number: 8, International: "Cm", Symbol: "C -2y"},
	{Number: 9, International: "Cc", Symbol: "C -2yc"},
	{Number: 10, International: "P2/m", Symbol: "-P 2y"},
	{Number: 11, International: "P2_1/m", Symbol: "-P 2yb"},
	{Number: 12, International: "C2/m", Symbol: "-C 2y"},
	{Number: 13, International: "P2/c", Symbol: "-P 2yc"},
	{Number: 14, International: "P2_1/c", Symbol: "-P 2ybc"},
	{Number: 15, International: "C2/c", Symbol: "-C 2yc"},
	{Number: 16, International: "P222", Symbol: "P 2 2"},
	{Number: 17, International: "P222_1", Symbol: "P 2c 2"},
	{Number: 18, International: "P2_12_12", Symbol: "P 2 2ab"},
	{Number: 19, International: "P2_12_12_1", Symbol: "P 2ac 2ab"},
	{Number: 20, International: "C222_1", Symbol: "C 2c 2"},
	{Number: 21, International: "C222", Symbol: "C 2 2"},
	{Number: 22, International: "F222", Symbol: "F 2 2"},
	{Number: 23, International: "I222", Symbol: "I 2 2"},
	{Number: 24, International: "I2_12_12_1", Symbol: "I 2b 2c"},
	{Number: 25, International: "Pmm2", Symbol: "P 2 -2"},
	{Number: 26, International: "Pmc2_1", Symbol: "P 2c -2"},
	{Number: 27, International: "Pcc2", Symbol: "P 2 -2c"},
	{Number: 28, International: "Pma2", Symbol: "P 2 -2a"},
	{Number: 29, International: "Pca2_1", Symbol: "P 2c -2ac"},
	{Number: 30, International: "Pnc2", Symbol: "P 2 -2bc"},
	{Number: 31, International: "Pmn2_1", Symbol: "P 2ac -2"},
	{Number: 32, International: "Pba2", Symbol: "P 2 -2ab"},
	{Number: 33, International: "Pna2_1", Symbol: "P 2c -2n"},
	{Number: 34, International: "Pnn2", Symbol: "P 2 -2n"},
	{Number: 35, International: "Cmm2", Symbol: "C 2 -2"},
	{Number: 36, International: "Cmc2_1", Symbol: "C 2c -2"},
	{Number: 37, International: "Ccc2", Symbol: "C 2 -2c"},
	{Number: 38, International: "Amm2", Symbol: "A 2 -2"},
	{Number: 39, International: "Aem2", Symbol: "A 2 -2b"},
	{Number: 40, International: "Ama2", Symbol: "A 2 -2a"},
	{Number: 41, International: "Aea2", Symbol: "A 2 -2ab"},
	{Number: 42, International: "Fmm2", Symbol: "F 2 -2"},
	{Number: 43, International: "Fdd2", Symbol: "F 2 -2d"},
	{Number: 44, International: "Imm2", Symbol: "I 2 -2"},
	{Number: 45, International: "Iba2", Symbol: "I 2 -2c"},
	{Number: 46, International: "Ima2", Symbol: "I 2 -2a"},
	{Number: 47, International: "Pmmm", Symbol: "-P 2 2"},
	{Number: 48, International: "Pnnn", Symbol: "-P 2ab 2bc"},
	{Number: 49, International: "Pccm", Symbol: "-P 2 2c"},
	{Number: 50, International: "Pban", Symbol: "-P 2ab 2b"},
	{Number: 51, International: "Pmma", Symbol: "-P 2a 2a"},
	{Number: 52, International: "Pnna", Symbol: "-P 2a 2bc"},
	{Number: 53, International: "Pmna", Symbol: "-P 2ac 2"},
	{Number: 54, International: "Pcca", Symbol: "-P 2a 2ac"},
	{Number: 55, International: "Pbam", Symbol: "-P 2 2ab"},
	{Number: 56, International: "Pccn", Symbol: "-P 2ab 2ac"},
	{Number: 57, International: "Pbcm", Symbol: "-P 2c 2b"},
	{Number: 58, International: "Pnnm", Symbol: "-P 2 2n"},
	{Number: 59, International: "Pmmn", Symbol: "-P 2ab 2a"},
	{Number: 60, International: "Pbcn", Symbol: "-P 2n 2ab"},
	{Number: 61, International: "Pbca", Symbol: "-P 2ac 2ab"},
	{Number: 62, International: "Pnma", Symbol: "-P 2ac 2n"},
	{Number: 63, International: "Cmcm", Symbol: "-C 2c 2"},
	{Number: 64, International: "Cmce", Symbol: "-C 2bc 2"},
	{Number: 65, International: "Cmmm", Symbol: "-C 2 2"},
	{Number: 66, International: "Cccm", Symbol: "-C 2 2c"},
	{Number: 67, International: "Cmme", Symbol: "-C 2b 2"},
	{Number: 68, International: "Ccce", Symbol: "-C 2b 2bc"},
	{Number: 69, International: "Fmmm", Symbol: "-F 2 2"},
	{Number: 70, International: "Fddd", Symbol: "-F 2uv 2vw"},
	{Number: 71, International: "Immm", Symbol: "-I 2 2"},
	{Number: 72, International: "Ibam", Symbol: "-I 2 2c"},
	{Number: 73, International: "Ibca", Symbol: "-I 2b 2c"},
	{Number: 74, International: "Imma", Symbol: "-I 2b 2"},
	{Number: 75, International: "P4", Symbol: "P 4"},
	{Number: 76, International: "P4_1", Symbol: "P 4w"},
	{Number: 77, International: "P4_2", Symbol: "P 4c"},
	{Number: 78, International: "P4_3", Symbol: "P 4cw"},
	{Number: 79, International: "I4", Symbol: "I 4"},
	{Number: 80, International: "I4_1", Symbol: "I 4bw"},
	{Number: 81, International: "P-4", Symbol: "P -4"},
	{Number: 82, International: "I-4", Symbol: "I -4"},
	{Number: 83, International: "P4/m", Symbol: "-P 4"},
	{Number: 84, International: "P4_2/m", Symbol: "-P 4c"},
	{Number: 85, International: "P4/n", Symbol: "-P 4a"},
	{Number: 86, International: "P4_2/n", Symbol: "-P 4bc"},
	{Number: 87, International: "I4/m", Symbol: "-I 4"},
	{Number: 88, International: "I4_1/a", Symbol: "-I 4ad"},
	{Number: 89, International: "P422", Symbol: "P 4 2"},
	{Number: 90, International: "P42_12", Symbol: "P 4ab 2ab"},
	{Number: 91, International: "P4_122", Symbol: "P 4w 2c"},
	{Number: 92, International: "P4_12_12", Symbol: "P 4abw 2nw"},
	{Number: 93, International: "P4_222", Symbol: "P 4c 2"},
	{Number: 94, International: "P4_22_12", Symbol: "P 4n 2n"},
	{Number: 95, International: "P4_322", Symbol: "P 4cw 2c"},
	{Number: 96, International: "P4_32_12", Symbol: "P 4nw 2abw"},
	{Number: 97, International: "I422", Symbol: "I 4 2"},
	{Number: 98, International: "I4_122", Symbol: "I 4bw 2bw"},
	{Number: 99, International: "P4mm", Symbol: "P 4 -2"},
	{Number: 100, International: "P4bm", Symbol: "P 4 -2ab"},
	{Number: 101, International: "P4_2cm", Symbol: "P 4c -2c"},
	{Number: 102, International: "P4_2nm", Symbol: "P 4n -2n"},
	{Number: 103, International: "P4cc", Symbol: "P 4 -2c"},
	{Number: 104, International: "P4nc", Symbol: "P 4 -2n"},
	{Number: 105, International: "P4_2mc", Symbol: "P 4c -2"},
	{Number: 106, International: "P4_2bc", Symbol: "P 4c -2ab"},
	{Number: 107, International: "I4mm", Symbol: "I 4 -2"},
	{Number: 108, International: "I4cm", Symbol: "I 4 -2c"},
	{Number: 109, International: "I4_1md", Symbol: "I 4bw -2"},
	{Number: 110, International: "I4_1cd", Symbol: "I 4bw -2c"},
	{Number: 111, International: "P-42m", Symbol: "P -4 2"},
	{Number: 112, International: "P-42c", Symbol: "P -4 2c"},
	{Number: 113, International: "P-42_1m", Symbol: "P -4 2ab"},
	{Number: 114, International: "P-42_1c", Symbol: "P -4 2n"},
	{Number: 115, International: "P-4m2", Symbol: "P -4 -2"},
	{Number: 116, International: "P-4c2", Symbol: "P -4 -2c"},
	{Number: 117, International: "P-4b2", Symbol: "P -4 -2ab"},
	{Number: 118, International: "P-4n2", Symbol: "P -4 -2n"},
	{Number: 119, International: "I-4m2", Symbol: "I -4 -2"},
	{Number: 120, International: "I-4c2", Symbol: "I -4 -2c"},
	{Number: 121, International: "I-42m", Symbol: "I -4 2"},
	{Number: 122, International: "I-42d", Symbol: "I -4 2bw"},
	{Number: 123, International: "P4/mmm", Symbol: "-P 4 2"},
	{Number: 124, International: "P4/mcc", Symbol: "-P 4 2c"},
	{Number: 125, International: "P4/nbm", Symbol: "-P 4a 2b"},
	{Number: 126, International: "P4/nnc", Symbol: "-P 4a 2bc"},
	{Number: 127, International: "P4/mbm", Symbol: "-P 4 2ab"},
	{Number: 128, International: "P4/mnc", Symbol: "-P 4 2n"},
	{Number: 129, International: "P4/nmm", Symbol: "-P 4a 2a"},
	{Number: 130, International: "P4/ncc", Symbol: "-P 4a 2ac"},
	{Number: 131, International: "P4_2/mmc", Symbol: "-P 4c 2"},
	{Number: 132, International: "P4_2/mcm", Symbol: "-P 4c 2c"},
	{Number: 133, International: "P4_2/nbc", Symbol: "-P 4ac 2b"},
	{Number: 134, International: "P4_2/nnm", Symbol: "-P 4ac 2bc"},
	{Number: 135, International: "P4_2/mbc", Symbol: "-P 4c 2ab"},
	{Number: 136, International: "P4_2/mnm", Symbol: "-P 4n 2n"},
	{Number: 137, International: "P4_2/nmc", Symbol: "-P 4ac 2a"},
	{Number: 138, International: "P4_2/ncm", Symbol: "-P 4ac 2ac"},
	{Number: 139, International: "I4/mmm", Symbol: "-I 4 2"},
	{Number: 140, International: "I4/mcm", Symbol: "-I 4 2c"},
	{Number: 141, International: "I4_1/amd", Symbol: "-I 4bd 2"},
	{Number: 142, International: "I4_1/acd", Symbol: "-I 4bd 2c"},
	{Number: 143, International: "P3", Symbol: "P 3"},
	{Number: 144, International: "P3_1", Symbol: "P 31"},
	{Number: 145, International: "P3_2", Symbol: "P 32"},
	{Number: 146, International: "R3", Symbol: "R 3"},
	{Number: 147, International: "P-3", Symbol: "-P 3"},
	{Number: 148, International: "R-3", Symbol: "-R 3"},
	{Number: 149, International: "P312", Symbol: "P 3 2"},
	{Number: 150, International: "P321", Symbol: "P 3 2\""},
	{Number: 151, International: "P3_112", Symbol: "P 31 2c (0 0 1)"},
	{Number: 152, International: "P3_121", Symbol: "P 31 2\""},
	{Number: 153, International: "P3_212", Symbol: "P 32 2c (0 0 -1)"},
	{Number: 154, International: "P3_221", Symbol: "P 32 2\""},
	{Number: 155, International: "R32", Symbol: "R 3 2\""},
	{Number: 156, International: "P3m1", Symbol: "P 3 -2\""},
	{Number: 157, International: "P31m", Symbol: "P 3 -2"},
	{Number: 158, International: "P3c1", Symbol: "P 3 -2\"c"},
	{Number: 159, International: "P31c", Symbol: "P 3 -2c"},
	{Number: 160, International: "R3m", Symbol: "R 3 -2\""},
	{Number: 161, International: "R3c", Symbol: "R 3 -2\"c"},
	{Number: 162, International: "P-31m", Symbol: "-P 3 2"},
	{Number: 163, International: "P-31c", Symbol: "-P 3 2c"},
	{Number: 164, International: "P-3m1", Symbol: "-P 3 2\""},
	{Number: 165, International: "P-3c1", Symbol: "-P 3 2\"c"},
	{Number: 166, International: "R-3m", Symbol: "-R 3 2\""},
	{Number: 167, International: "R-3c", Symbol: "-R 3 2\"c"},
	{Number: 168, International: "P6", Symbol: "P 6"},
	{Number: 169, International: "P6_1", Symbol: "P 61"},
	{Number: 170, International: "P6_5", Symbol: "P 65"},
	{Number: 171, International: "P6_2", Symbol: "P 62"},
	{Number: 172, International: "P6_4", Symbol: "P 64"},
	{Number: 173, International: "P6_3", Symbol: "P 6c"},
	{Number: 174, International: "P-6", Symbol: "P -6"},
	{Number: 175, International: "P6/m", Symbol: "-P 6"},
	{Number: 176, International: "P6_3/m", Symbol: "-P 6c"},
	{Number: 177, International: "P622", Symbol: "P 6 2"},
	{Number: 178, International: "P6_122", Symbol: "P 61 2 (0 0 -1)"},
	{Number: 179, International: "P6_522", Symbol: "P 65 2 (0 0 1)"},
	{Number: 180, International: "P6_222", Symbol: "P 62 2c (0 0 1)"},
	{Number: 181, International: "P6_422", Symbol: "P 64 2c (0 0 -1)"},
	{Number: 182, International: "P6_322", Symbol: "P 6c 2c"},
	{Number: 183, International: "P6mm", Symbol: "P 6 -2"},
	{Number: 184, International: "P6cc", Symbol: "P 6 -2c"},
	{Number: 185, International: "P6_3cm", Symbol: "P 6c -2"},
	{Number: 186, International: "P6_3mc", Symbol: "P 6c -2c"},
	{Number: 187, International: "P-6m2", Symbol: "P -6 2"},
	{Number: 188, International: "P-6c2", Symbol: "P -6c 2"},
	{Number: 189, International: "P-62m", Symbol: "P -6 -2"},
	{Number: 190, International: "P-62c", Symbol: "P -6c -2c"},
	{Number: 191, International: "P6/mmm", Symbol: "-P 6 2"},
	{Number: 192, International: "P6/mcc", Symbol: "-P 6 2c"},
	{Number: 193, International: "P6_3/mcm", Symbol: "-P 6c 2"},
	{Number: 194, International: "P6_3/mmc", Symbol: "-P 6c 2c"},
	{Number: 195, International: "P23", Symbol: "P 2 2 3"},
	{Number: 196, International: "F23", Symbol: "F 2 2 3"},
	{Number: 197, International: "I23", Symbol: "I 2 2 3"},
	{Number: 198, International: "P2_13", Symbol: "P 2ac 2ab 3"},
	{Number: 199, International: "I2_13", Symbol: "I 2b 2c 3"},
	{Number: 200, International: "Pm-3", Symbol: "-P 2 2 3"},
	{Number: 201, International: "Pn-3", Symbol: "-P 2ab 2bc 3"},
	{Number: 202, International: "Fm-3", Symbol: "-F 2 2 3"},
	{Number: 203, International: "Fd-3", Symbol: "-F 2uv 2vw 3"},
	{Number: 204, International: "Im-3", Symbol: "-I 2 2 3"},
	{Number: 205, International: "Pa-3", Symbol: "-P 2ac 2ab 3"},
	{Number: 206, International: "Ia-3", Symbol: "-I 2b 2c 3"},
	{Number: 207, International: "P432", Symbol: "P 4 2 3"},
	{Number: 208, International: "P4_232", Symbol: "P 4n 2 3"},
	{Number: 209, International: "F432", Symbol: "F 4 2 3"},
	{Number: 210, International: "F4_132", Symbol: "F 4d 2 3"},
	{Number: 211, International: "I432", Symbol: "I 4 2 3"},
	{Number: 212, International: "P4_332", Symbol: "P 4acd 2ab 3"},
	{Number: 213, International: "P4_132", Symbol: "P 4bd 2ab 3"},
	{Number: 214, International: "I4_132", Symbol: "I 4bd 2c 3"},
	{Number: 215, International: "P-43m", Symbol: "P -4 2 3"},
	{Number: 216, International: "F-43m", Symbol: "F -4 2 3"},
	{Number: 217, International: "I-43m", Symbol: "I -4 2 3"},
	{Number: 218, International: "P-43n", Symbol: "P -4n 2 3"},
	{Number: 219, International: "F-43c", Symbol: "F -4a 2 3"},
	{Number: 220, International: "I-43d", Symbol: "I -4bd 2c 3"},
	{Number: 221, International: "Pm-3m", Symbol: "-P 4 2 3"},
	{Number: 222, International: "Pn-3n", Symbol: "-P 4a 2bc 3"},
	{Number: 223, International: "Pm-3n", Symbol: "-P 4n 2 3"},
	{Number: 224, International: "Pn-3m", Symbol: "-P 4bc 2bc 3"},
	{Number: 225, International: "Fm-3m", Symbol: "-F 4 2 3"},
	{Number: 226, International: "Fm-3c", Symbol: "-F 4c 2 3"},
	{Number: 227, International: "Fd-3m", Symbol: "-F 4vw 2vw 3"},
	{Number: 228, International: "Fd-3c", Symbol: "-F 4cvw 2vw 3"},
	{Number: 229, International: "Im-3m", Symbol: "-I 4 2 3"},
	{Number: 230, International: "Ia-3d", Symbol: "-I 4bd 2c 3"},
}
