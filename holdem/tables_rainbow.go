package holdem

// rainbowDP[pos][c][R] is the number of lexicographically smaller rank-count
// assignments when the rank at processing position pos (0 = Deuce .. 12 =
// Ace) takes count c with R cards remaining to distribute among it and the
// stronger ranks still to come. Used by rainbowHash to build a dense,
// collision-free index into rainbowTable.
var rainbowDP = [13][5][8]uint16{
	{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{1, 12, 78, 364, 1365, 4356, 12232, 30888},
		{1, 13, 90, 442, 1729, 5721, 16588, 43120},
		{1, 13, 91, 454, 1807, 6085, 17953, 47476},
		{1, 13, 91, 455, 1819, 6163, 18317, 48841},
	},
	{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{1, 11, 66, 286, 1001, 2992, 7887, 18722},
		{1, 12, 77, 352, 1287, 3993, 10879, 26609},
		{1, 12, 78, 363, 1353, 4279, 11880, 29601},
		{1, 12, 78, 364, 1364, 4345, 12166, 30602},
	},
	{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{1, 10, 55, 220, 715, 1992, 4905, 10890},
		{1, 11, 65, 275, 935, 2707, 6897, 15795},
		{1, 11, 66, 285, 990, 2927, 7612, 17787},
		{1, 11, 66, 286, 1000, 2982, 7832, 18502},
	},
	{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{1, 9, 45, 165, 495, 1278, 2922, 6030},
		{1, 10, 54, 210, 660, 1773, 4200, 8952},
		{1, 10, 55, 219, 705, 1938, 4695, 10230},
		{1, 10, 55, 220, 714, 1983, 4860, 10725},
	},
	{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{1, 8, 36, 120, 330, 784, 1652, 3144},
		{1, 9, 44, 156, 450, 1114, 2436, 4796},
		{1, 9, 45, 164, 486, 1234, 2766, 5580},
		{1, 9, 45, 165, 494, 1270, 2886, 5910},
	},
	{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{1, 7, 28, 84, 210, 455, 875, 1520},
		{1, 8, 35, 112, 294, 665, 1330, 2395},
		{1, 8, 36, 119, 322, 749, 1540, 2850},
		{1, 8, 36, 120, 329, 777, 1624, 3060},
	},
	{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{1, 6, 21, 56, 126, 246, 426, 666},
		{1, 7, 27, 77, 182, 372, 672, 1092},
		{1, 7, 28, 83, 203, 428, 798, 1338},
		{1, 7, 28, 84, 209, 449, 854, 1464},
	},
	{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{1, 5, 15, 35, 70, 121, 185, 255},
		{1, 6, 20, 50, 105, 191, 306, 440},
		{1, 6, 21, 55, 120, 226, 376, 561},
		{1, 6, 21, 56, 125, 241, 411, 631},
	},
	{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{1, 4, 10, 20, 35, 52, 68, 80},
		{1, 5, 14, 30, 55, 87, 120, 148},
		{1, 5, 15, 34, 65, 107, 155, 200},
		{1, 5, 15, 35, 69, 117, 175, 235},
	},
	{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{1, 3, 6, 10, 15, 18, 19, 18},
		{1, 4, 9, 16, 25, 33, 37, 37},
		{1, 4, 10, 19, 31, 43, 52, 55},
		{1, 4, 10, 20, 34, 49, 62, 70},
	},
	{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{1, 2, 3, 4, 5, 4, 3, 2},
		{1, 3, 5, 7, 9, 9, 7, 5},
		{1, 3, 6, 9, 12, 13, 12, 9},
		{1, 3, 6, 10, 14, 16, 16, 14},
	},
	{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{1, 1, 1, 1, 1, 0, 0, 0},
		{1, 2, 2, 2, 2, 1, 0, 0},
		{1, 2, 3, 3, 3, 2, 1, 0},
		{1, 2, 3, 4, 4, 3, 2, 1},
	},
	{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{1, 0, 0, 0, 0, 0, 0, 0},
		{1, 1, 0, 0, 0, 0, 0, 0},
		{1, 1, 1, 0, 0, 0, 0, 0},
		{1, 1, 1, 1, 0, 0, 0, 0},
	},
}
// rainbowTable maps the dense hash produced by rainbowHash to its 16-bit
// power index. It is a perfect hash: every reachable 7-card rank-count
// vector maps to exactly one slot, with no gaps and no collisions.
var rainbowTable = [49205]uint16{
	10, 22, 10, 166, 22, 10, 166, 178, 22, 11, 167, 190, 179, 23, 34, 34, 34, 35, 10, 166,
	22, 10, 166, 178, 22, 11, 167, 2467, 179, 23, 167, 190, 191, 179, 34, 34, 35, 10, 166, 178,
	22, 11, 168, 2467, 180, 23, 167, 2478, 2599, 179, 190, 192, 191, 34, 35, 12, 168, 202, 180, 24,
	168, 202, 203, 180, 202, 204, 203, 192, 192, 36, 46, 46, 46, 47, 46, 46, 47, 46, 47, 48,
	10, 166, 22, 10, 166, 178, 22, 11, 167, 2467, 179, 23, 167, 190, 191, 179, 34, 34, 35, 10,
	166, 178, 22, 11, 1599, 1599, 1599, 23, 167, 1599, 1599, 179, 190, 1599, 191, 34, 35, 12, 168, 2468,
	180, 24, 168, 1599, 1599, 180, 2479, 1599, 2600, 192, 192, 36, 168, 202, 203, 180, 202, 1599, 203, 204,
	204, 192, 46, 46, 47, 46, 47, 48, 10, 166, 178, 22, 11, 169, 2467, 181, 23, 167, 2478, 2599,
	179, 190, 193, 191, 34, 35, 12, 169, 2468, 181, 24, 169, 1599, 1599, 181, 2479, 1599, 2600, 193, 193,
	36, 168, 2489, 2610, 180, 2490, 1599, 2611, 2720, 2721, 192, 202, 205, 203, 205, 205, 204, 46, 47, 48,
	13, 169, 214, 181, 25, 169, 214, 215, 181, 214, 216, 215, 193, 193, 37, 169, 214, 215, 181, 214,
	1599, 215, 216, 216, 193, 214, 217, 215, 217, 217, 216, 205, 205, 205, 49, 58, 58, 58, 59, 58,
	58, 59, 58, 59, 60, 58, 58, 59, 58, 59, 60, 58, 59, 60, 61, 10, 166, 22, 10, 166,
	178, 22, 11, 167, 2467, 179, 23, 167, 190, 191, 179, 34, 34, 35, 10, 166, 178, 22, 11, 1609,
	2467, 1675, 23, 167, 2478, 2599, 179, 190, 1741, 191, 34, 35, 12, 168, 2468, 180, 24, 168, 2489, 2610,
	180, 2479, 2720, 2600, 192, 192, 36, 168, 202, 203, 180, 202, 1807, 203, 204, 204, 192, 46, 46, 47,
	46, 47, 48, 10, 166, 178, 22, 11, 1609, 2467, 1675, 23, 167, 2478, 2599, 179, 190, 1741, 191, 34,
	35, 12, 1610, 2468, 1676, 24, 1620, 1599, 1599, 1600, 2479, 1599, 1600, 1742, 1600, 36, 168, 2489, 2610, 180,
	2490, 1599, 1600, 2720, 1600, 192, 202, 1807, 203, 1808, 1600, 204, 46, 47, 48, 13, 169, 2469, 181, 25,
	169, 2500, 2621, 181, 2480, 2731, 2601, 193, 193, 37, 169, 2500, 2621, 181, 2501, 1599, 1600, 2731, 1600, 193,
	2491, 2830, 2612, 2830, 1600, 2722, 205, 205, 205, 49, 169, 214, 215, 181, 214, 1873, 215, 216, 216, 193,
	214, 1873, 215, 1874, 1600, 216, 217, 217, 217, 205, 58, 58, 59, 58, 59, 60, 58, 59, 60, 61,
	10, 166, 178, 22, 11, 170, 2467, 182, 23, 167, 2478, 2599, 179, 190, 194, 191, 34, 35, 12, 170,
	2468, 182, 24, 170, 2511, 2632, 182, 2479, 2742, 2600, 194, 194, 36, 168, 2489, 2610, 180, 2490, 2841, 2611,
	2720, 2721, 192, 202, 206, 203, 206, 206, 204, 46, 47, 48, 13, 170, 2469, 182, 25, 170, 2511, 2632,
	182, 2480, 2742, 2601, 194, 194, 37, 170, 2511, 2632, 182, 2512, 1599, 1600, 2742, 1600, 194, 2491, 2841, 2612,
	2841, 1600, 2722, 206, 206, 206, 49, 169, 2500, 2621, 181, 2501, 2929, 2622, 2731, 2732, 193, 2502, 2929, 2623,
	2929, 1600, 2733, 2830, 2831, 2832, 205, 214, 218, 215, 218, 218, 216, 218, 218, 218, 217, 58, 59, 60,
	61, 14, 170, 226, 182, 26, 170, 226, 227, 182, 226, 228, 227, 194, 194, 38, 170, 226, 227, 182,
	226, 1939, 227, 228, 228, 194, 226, 229, 227, 229, 229, 228, 206, 206, 206, 50, 170, 226, 227, 182,
	226, 1939, 227, 228, 228, 194, 226, 1939, 227, 1940, 1600, 228, 229, 229, 229, 206, 226, 230, 227, 230,
	230, 228, 230, 230, 230, 229, 218, 218, 218, 218, 62, 70, 70, 70, 71, 70, 70, 71, 70, 71,
	72, 70, 70, 71, 70, 71, 72, 70, 71, 72, 73, 70, 70, 71, 70, 71, 72, 70, 71, 72,
	73, 70, 71, 72, 73, 74, 10, 166, 22, 10, 166, 178, 22, 11, 167, 2467, 179, 23, 167, 190,
	191, 179, 34, 34, 35, 10, 166, 178, 22, 11, 1609, 2467, 1675, 23, 167, 2478, 2599, 179, 190, 1741,
	191, 34, 35, 12, 168, 2468, 180, 24, 168, 2489, 2610, 180, 2479, 2720, 2600, 192, 192, 36, 168, 202,
	203, 180, 202, 1807, 203, 204, 204, 192, 46, 46, 47, 46, 47, 48, 10, 166, 178, 22, 11, 1609,
	2467, 1675, 23, 167, 2478, 2599, 179, 190, 1741, 191, 34, 35, 12, 1610, 2468, 1676, 24, 1620, 1599, 1599,
	1686, 2479, 1599, 2600, 1742, 1752, 36, 168, 2489, 2610, 180, 2490, 1599, 2611, 2720, 2721, 192, 202, 1807, 203,
	1808, 1818, 204, 46, 47, 48, 13, 169, 2469, 181, 25, 169, 2500, 2621, 181, 2480, 2731, 2601, 193, 193,
	37, 169, 2500, 2621, 181, 2501, 1599, 2622, 2731, 2732, 193, 2491, 2830, 2612, 2830, 2831, 2722, 205, 205, 205,
	49, 169, 214, 215, 181, 214, 1873, 215, 216, 216, 193, 214, 1873, 215, 1874, 1884, 216, 217, 217, 217,
	205, 58, 58, 59, 58, 59, 60, 58, 59, 60, 61, 10, 166, 178, 22, 11, 1609, 2467, 1675, 23,
	167, 2478, 2599, 179, 190, 1741, 191, 34, 35, 12, 1610, 2468, 1676, 24, 1620, 3325, 3545, 1686, 2479, 3765,
	2600, 1742, 1752, 36, 168, 2489, 2610, 180, 2490, 3985, 2611, 2720, 2721, 192, 202, 1807, 203, 1808, 1818, 204,
	46, 47, 48, 13, 1611, 2469, 1677, 25, 1621, 3326, 3546, 1687, 2480, 3766, 2601, 1743, 1753, 37, 1630, 3335,
	3555, 1696, 1601, 1599, 1600, 1601, 1600, 1601, 2491, 3986, 2612, 1601, 1600, 1601, 1809, 1819, 1601, 49, 169, 2500,
	2621, 181, 2501, 4205, 2622, 2731, 2732, 193, 2502, 4206, 2623, 1601, 1600, 1601, 2830, 2831, 1601, 205, 214, 1873,
	215, 1874, 1884, 216, 1875, 1885, 1601, 217, 58, 59, 60, 61, 14, 170, 2470, 182, 26, 170, 2511, 2632,
	182, 2481, 2742, 2602, 194, 194, 38, 170, 2511, 2632, 182, 2512, 4425, 2633, 2742, 2743, 194, 2492, 2841, 2613,
	2841, 2842, 2723, 206, 206, 206, 50, 170, 2511, 2632, 182, 2512, 4425, 2633, 2742, 2743, 194, 2513, 4426, 2634,
	1601, 1600, 1601, 2841, 2842, 1601, 206, 2503, 2929, 2624, 2929, 2930, 2734, 2929, 2930, 1601, 2833, 218, 218, 218,
	218, 62, 170, 226, 227, 182, 226, 1939, 227, 228, 228, 194, 226, 1939, 227, 1940, 1950, 228, 229, 229,
	229, 206, 226, 1939, 227, 1940, 1950, 228, 1941, 1951, 1601, 229, 230, 230, 230, 230, 218, 70, 70, 71,
	70, 71, 72, 70, 71, 72, 73, 70, 71, 72, 73, 74, 10, 166, 178, 22, 11, 171, 2467, 183,
	23, 167, 2478, 2599, 179, 190, 195, 191, 34, 35, 12, 171, 2468, 183, 24, 171, 2522, 2643, 183, 2479,
	2753, 2600, 195, 195, 36, 168, 2489, 2610, 180, 2490, 2852, 2611, 2720, 2721, 192, 202, 207, 203, 207, 207,
	204, 46, 47, 48, 13, 171, 2469, 183, 25, 171, 2522, 2643, 183, 2480, 2753, 2601, 195, 195, 37, 171,
	2522, 2643, 183, 2523, 1599, 2644, 2753, 2754, 195, 2491, 2852, 2612, 2852, 2853, 2722, 207, 207, 207, 49, 169,
	2500, 2621, 181, 2501, 2940, 2622, 2731, 2732, 193, 2502, 2940, 2623, 2940, 2941, 2733, 2830, 2831, 2832, 205, 214,
	219, 215, 219, 219, 216, 219, 219, 219, 217, 58, 59, 60, 61, 14, 171, 2470, 183, 26, 171, 2522,
	2643, 183, 2481, 2753, 2602, 195, 195, 38, 171, 2522, 2643, 183, 2523, 4645, 2644, 2753, 2754, 195, 2492, 2852,
	2613, 2852, 2853, 2723, 207, 207, 207, 50, 171, 2522, 2643, 183, 2523, 4645, 2644, 2753, 2754, 195, 2524, 4646,
	2645, 1601, 1600, 1601, 2852, 2853, 1601, 207, 2503, 2940, 2624, 2940, 2941, 2734, 2940, 2941, 1601, 2833, 219, 219,
	219, 219, 62, 170, 2511, 2632, 182, 2512, 3017, 2633, 2742, 2743, 194, 2513, 3017, 2634, 3017, 3018, 2744, 2841,
	2842, 2843, 206, 2514, 3017, 2635, 3017, 3018, 2745, 3017, 3018, 1601, 2844, 2929, 2930, 2931, 2932, 218, 226, 231,
	227, 231, 231, 228, 231, 231, 231, 229, 231, 231, 231, 231, 230, 70, 71, 72, 73, 74, 15, 171,
	238, 183, 27, 171, 238, 239, 183, 238, 240, 239, 195, 195, 39, 171, 238, 239, 183, 238, 2005, 239,
	240, 240, 195, 238, 241, 239, 241, 241, 240, 207, 207, 207, 51, 171, 238, 239, 183, 238, 2005, 239,
	240, 240, 195, 238, 2005, 239, 2006, 2016, 240, 241, 241, 241, 207, 238, 242, 239, 242, 242, 240, 242,
	242, 242, 241, 219, 219, 219, 219, 63, 171, 238, 239, 183, 238, 2005, 239, 240, 240, 195, 238, 2005,
	239, 2006, 2016, 240, 241, 241, 241, 207, 238, 2005, 239, 2006, 2016, 240, 2007, 2017, 1601, 241, 242, 242,
	242, 242, 219, 238, 243, 239, 243, 243, 240, 243, 243, 243, 241, 243, 243, 243, 243, 242, 231, 231,
	231, 231, 231, 75, 82, 82, 82, 83, 82, 82, 83, 82, 83, 84, 82, 82, 83, 82, 83, 84,
	82, 83, 84, 85, 82, 82, 83, 82, 83, 84, 82, 83, 84, 85, 82, 83, 84, 85, 86, 82,
	82, 83, 82, 83, 84, 82, 83, 84, 85, 82, 83, 84, 85, 86, 82, 83, 84, 85, 86, 87,
	10, 166, 22, 10, 166, 178, 22, 11, 167, 2467, 179, 23, 167, 190, 191, 179, 34, 34, 35, 10,
	166, 178, 22, 11, 1609, 2467, 1675, 23, 167, 2478, 2599, 179, 190, 1741, 191, 34, 35, 12, 168, 2468,
	180, 24, 168, 2489, 2610, 180, 2479, 2720, 2600, 192, 192, 36, 168, 202, 203, 180, 202, 1807, 203, 204,
	204, 192, 46, 46, 47, 46, 47, 48, 10, 166, 178, 22, 11, 1609, 2467, 1675, 23, 167, 2478, 2599,
	179, 190, 1741, 191, 34, 35, 12, 1610, 2468, 1676, 24, 1620, 1599, 1599, 1686, 2479, 1599, 2600, 1742, 1752,
	36, 168, 2489, 2610, 180, 2490, 1599, 2611, 2720, 2721, 192, 202, 1807, 203, 1808, 1818, 204, 46, 47, 48,
	13, 169, 2469, 181, 25, 169, 2500, 2621, 181, 2480, 2731, 2601, 193, 193, 37, 169, 2500, 2621, 181, 2501,
	1599, 2622, 2731, 2732, 193, 2491, 2830, 2612, 2830, 2831, 2722, 205, 205, 205, 49, 169, 214, 215, 181, 214,
	1873, 215, 216, 216, 193, 214, 1873, 215, 1874, 1884, 216, 217, 217, 217, 205, 58, 58, 59, 58, 59,
	60, 58, 59, 60, 61, 10, 166, 178, 22, 11, 1609, 2467, 1675, 23, 167, 2478, 2599, 179, 190, 1741,
	191, 34, 35, 12, 1610, 2468, 1676, 24, 1620, 3325, 3545, 1686, 2479, 3765, 2600, 1742, 1752, 36, 168, 2489,
	2610, 180, 2490, 3985, 2611, 2720, 2721, 192, 202, 1807, 203, 1808, 1818, 204, 46, 47, 48, 13, 1611, 2469,
	1677, 25, 1621, 3326, 3546, 1687, 2480, 3766, 2601, 1743, 1753, 37, 1630, 3335, 3555, 1696, 3380, 1599, 1600, 3775,
	1600, 1762, 2491, 3986, 2612, 3995, 1600, 2722, 1809, 1819, 1828, 49, 169, 2500, 2621, 181, 2501, 4205, 2622, 2731,
	2732, 193, 2502, 4206, 2623, 4215, 1600, 2733, 2830, 2831, 2832, 205, 214, 1873, 215, 1874, 1884, 216, 1875, 1885,
	1894, 217, 58, 59, 60, 61, 14, 170, 2470, 182, 26, 170, 2511, 2632, 182, 2481, 2742, 2602, 194, 194,
	38, 170, 2511, 2632, 182, 2512, 4425, 2633, 2742, 2743, 194, 2492, 2841, 2613, 2841, 2842, 2723, 206, 206, 206,
	50, 170, 2511, 2632, 182, 2512, 4425, 2633, 2742, 2743, 194, 2513, 4426, 2634, 4435, 1600, 2744, 2841, 2842, 2843,
	206, 2503, 2929, 2624, 2929, 2930, 2734, 2929, 2930, 2931, 2833, 218, 218, 218, 218, 62, 170, 226, 227, 182,
	226, 1939, 227, 228, 228, 194, 226, 1939, 227, 1940, 1950, 228, 229, 229, 229, 206, 226, 1939, 227, 1940,
	1950, 228, 1941, 1951, 1960, 229, 230, 230, 230, 230, 218, 70, 70, 71, 70, 71, 72, 70, 71, 72,
	73, 70, 71, 72, 73, 74, 10, 166, 178, 22, 11, 1609, 2467, 1675, 23, 167, 2478, 2599, 179, 190,
	1741, 191, 34, 35, 12, 1610, 2468, 1676, 24, 1620, 3325, 3545, 1686, 2479, 3765, 2600, 1742, 1752, 36, 168,
	2489, 2610, 180, 2490, 3985, 2611, 2720, 2721, 192, 202, 1807, 203, 1808, 1818, 204, 46, 47, 48, 13, 1611,
	2469, 1677, 25, 1621, 3326, 3546, 1687, 2480, 3766, 2601, 1743, 1753, 37, 1630, 3335, 3555, 1696, 3380, 1599, 3600,
	3775, 3820, 1762, 2491, 3986, 2612, 3995, 4040, 2722, 1809, 1819, 1828, 49, 169, 2500, 2621, 181, 2501, 4205, 2622,
	2731, 2732, 193, 2502, 4206, 2623, 4215, 4260, 2733, 2830, 2831, 2832, 205, 214, 1873, 215, 1874, 1884, 216, 1875,
	1885, 1894, 217, 58, 59, 60, 61, 14, 1612, 2470, 1678, 26, 1622, 3327, 3547, 1688, 2481, 3767, 2602, 1744,
	1754, 38, 1631, 3336, 3556, 1697, 3381, 6185, 3601, 3776, 3821, 1763, 2492, 3987, 2613, 3996, 4041, 2723, 1810, 1820,
	1829, 50, 1639, 3344, 3564, 1705, 3389, 6193, 3609, 3784, 3829, 1771, 1602, 1602, 1602, 1601, 1600, 1601, 1602, 1602,
	1601, 1602, 2503, 4207, 2624, 4216, 4261, 2734, 1602, 1602, 1601, 1602, 1876, 1886, 1895, 1602, 62, 170, 2511, 2632,
	182, 2512, 4425, 2633, 2742, 2743, 194, 2513, 4426, 2634, 4435, 4480, 2744, 2841, 2842, 2843, 206, 2514, 4427, 2635,
	4436, 4481, 2745, 1602, 1602, 1601, 1602, 2929, 2930, 2931, 1602, 218, 226, 1939, 227, 1940, 1950, 228, 1941, 1951,
	1960, 229, 1942, 1952, 1961, 1602, 230, 70, 71, 72, 73, 74, 15, 171, 2471, 183, 27, 171, 2522, 2643,
	183, 2482, 2753, 2603, 195, 195, 39, 171, 2522, 2643, 183, 2523, 4645, 2644, 2753, 2754, 195, 2493, 2852, 2614,
	2852, 2853, 2724, 207, 207, 207, 51, 171, 2522, 2643, 183, 2523, 4645, 2644, 2753, 2754, 195, 2524, 4646, 2645,
	4655, 4700, 2755, 2852, 2853, 2854, 207, 2504, 2940, 2625, 2940, 2941, 2735, 2940, 2941, 2942, 2834, 219, 219, 219,
	219, 63, 171, 2522, 2643, 183, 2523, 4645, 2644, 2753, 2754, 195, 2524, 4646, 2645, 4655, 4700, 2755, 2852, 2853,
	2854, 207, 2525, 4647, 2646, 4656, 4701, 2756, 1602, 1602, 1601, 1602, 2940, 2941, 2942, 1602, 219, 2515, 3017, 2636,
	3017, 3018, 2746, 3017, 3018, 3019, 2845, 3017, 3018, 3019, 1602, 2933, 231, 231, 231, 231, 231, 75, 171, 238,
	239, 183, 238, 2005, 239, 240, 240, 195, 238, 2005, 239, 2006, 2016, 240, 241, 241, 241, 207, 238, 2005,
	239, 2006, 2016, 240, 2007, 2017, 2026, 241, 242, 242, 242, 242, 219, 238, 2005, 239, 2006, 2016, 240, 2007,
	2017, 2026, 241, 2008, 2018, 2027, 1602, 242, 243, 243, 243, 243, 243, 231, 82, 82, 83, 82, 83, 84,
	82, 83, 84, 85, 82, 83, 84, 85, 86, 82, 83, 84, 85, 86, 87, 10, 166, 178, 22, 11,
	172, 2467, 184, 23, 167, 2478, 2599, 179, 190, 196, 191, 34, 35, 12, 172, 2468, 184, 24, 172, 2533,
	2654, 184, 2479, 2764, 2600, 196, 196, 36, 168, 2489, 2610, 180, 2490, 2863, 2611, 2720, 2721, 192, 202, 208,
	203, 208, 208, 204, 46, 47, 48, 13, 172, 2469, 184, 25, 172, 2533, 2654, 184, 2480, 2764, 2601, 196,
	196, 37, 172, 2533, 2654, 184, 2534, 1599, 2655, 2764, 2765, 196, 2491, 2863, 2612, 2863, 2864, 2722, 208, 208,
	208, 49, 169, 2500, 2621, 181, 2501, 2951, 2622, 2731, 2732, 193, 2502, 2951, 2623, 2951, 2952, 2733, 2830, 2831,
	2832, 205, 214, 220, 215, 220, 220, 216, 220, 220, 220, 217, 58, 59, 60, 61, 14, 172, 2470, 184,
	26, 172, 2533, 2654, 184, 2481, 2764, 2602, 196, 196, 38, 172, 2533, 2654, 184, 2534, 4865, 2655, 2764, 2765,
	196, 2492, 2863, 2613, 2863, 2864, 2723, 208, 208, 208, 50, 172, 2533, 2654, 184, 2534, 4865, 2655, 2764, 2765,
	196, 2535, 4866, 2656, 4875, 1600, 2766, 2863, 2864, 2865, 208, 2503, 2951, 2624, 2951, 2952, 2734, 2951, 2952, 2953,
	2833, 220, 220, 220, 220, 62, 170, 2511, 2632, 182, 2512, 3028, 2633, 2742, 2743, 194, 2513, 3028, 2634, 3028,
	3029, 2744, 2841, 2842, 2843, 206, 2514, 3028, 2635, 3028, 3029, 2745, 3028, 3029, 3030, 2844, 2929, 2930, 2931, 2932,
	218, 226, 232, 227, 232, 232, 228, 232, 232, 232, 229, 232, 232, 232, 232, 230, 70, 71, 72, 73,
	74, 15, 172, 2471, 184, 27, 172, 2533, 2654, 184, 2482, 2764, 2603, 196, 196, 39, 172, 2533, 2654, 184,
	2534, 4865, 2655, 2764, 2765, 196, 2493, 2863, 2614, 2863, 2864, 2724, 208, 208, 208, 51, 172, 2533, 2654, 184,
	2534, 4865, 2655, 2764, 2765, 196, 2535, 4866, 2656, 4875, 4920, 2766, 2863, 2864, 2865, 208, 2504, 2951, 2625, 2951,
	2952, 2735, 2951, 2952, 2953, 2834, 220, 220, 220, 220, 63, 172, 2533, 2654, 184, 2534, 4865, 2655, 2764, 2765,
	196, 2535, 4866, 2656, 4875, 4920, 2766, 2863, 2864, 2865, 208, 2536, 4867, 2657, 4876, 4921, 2767, 1602, 1602, 1601,
	1602, 2951, 2952, 2953, 1602, 220, 2515, 3028, 2636, 3028, 3029, 2746, 3028, 3029, 3030, 2845, 3028, 3029, 3030, 1602,
	2933, 232, 232, 232, 232, 232, 75, 171, 2522, 2643, 183, 2523, 3094, 2644, 2753, 2754, 195, 2524, 3094, 2645,
	3094, 3095, 2755, 2852, 2853, 2854, 207, 2525, 3094, 2646, 3094, 3095, 2756, 3094, 3095, 3096, 2855, 2940, 2941, 2942,
	2943, 219, 2526, 3094, 2647, 3094, 3095, 2757, 3094, 3095, 3096, 2856, 3094, 3095, 3096, 1602, 2944, 3017, 3018, 3019,
	3020, 3021, 231, 238, 244, 239, 244, 244, 240, 244, 244, 244, 241, 244, 244, 244, 244, 242, 244, 244,
	244, 244, 244, 243, 82, 83, 84, 85, 86, 87, 16, 172, 250, 184, 28, 172, 250, 251, 184, 250,
	252, 251, 196, 196, 40, 172, 250, 251, 184, 250, 2071, 251, 252, 252, 196, 250, 253, 251, 253, 253,
	252, 208, 208, 208, 52, 172, 250, 251, 184, 250, 2071, 251, 252, 252, 196, 250, 2071, 251, 2072, 2082,
	252, 253, 253, 253, 208, 250, 254, 251, 254, 254, 252, 254, 254, 254, 253, 220, 220, 220, 220, 64,
	172, 250, 251, 184, 250, 2071, 251, 252, 252, 196, 250, 2071, 251, 2072, 2082, 252, 253, 253, 253, 208,
	250, 2071, 251, 2072, 2082, 252, 2073, 2083, 2092, 253, 254, 254, 254, 254, 220, 250, 255, 251, 255, 255,
	252, 255, 255, 255, 253, 255, 255, 255, 255, 254, 232, 232, 232, 232, 232, 76, 172, 250, 251, 184,
	250, 2071, 251, 252, 252, 196, 250, 2071, 251, 2072, 2082, 252, 253, 253, 253, 208, 250, 2071, 251, 2072,
	2082, 252, 2073, 2083, 2092, 253, 254, 254, 254, 254, 220, 250, 2071, 251, 2072, 2082, 252, 2073, 2083, 2092,
	253, 2074, 2084, 2093, 1602, 254, 255, 255, 255, 255, 255, 232, 250, 256, 251, 256, 256, 252, 256, 256,
	256, 253, 256, 256, 256, 256, 254, 256, 256, 256, 256, 256, 255, 244, 244, 244, 244, 244, 244, 88,
	94, 94, 94, 95, 94, 94, 95, 94, 95, 96, 94, 94, 95, 94, 95, 96, 94, 95, 96, 97,
	94, 94, 95, 94, 95, 96, 94, 95, 96, 97, 94, 95, 96, 97, 98, 94, 94, 95, 94, 95,
	96, 94, 95, 96, 97, 94, 95, 96, 97, 98, 94, 95, 96, 97, 98, 99, 94, 94, 95, 94,
	95, 96, 94, 95, 96, 97, 94, 95, 96, 97, 98, 94, 95, 96, 97, 98, 99, 94, 95, 96,
	97, 98, 99, 100, 10, 166, 22, 10, 166, 178, 22, 11, 167, 2467, 179, 23, 167, 190, 191, 179,
	34, 34, 35, 10, 166, 178, 22, 11, 1609, 2467, 1675, 23, 167, 2478, 2599, 179, 190, 1741, 191, 34,
	35, 12, 168, 2468, 180, 24, 168, 2489, 2610, 180, 2479, 2720, 2600, 192, 192, 36, 168, 202, 203, 180,
	202, 1807, 203, 204, 204, 192, 46, 46, 47, 46, 47, 48, 10, 166, 178, 22, 11, 1609, 2467, 1675,
	23, 167, 2478, 2599, 179, 190, 1741, 191, 34, 35, 12, 1610, 2468, 1676, 24, 1620, 1599, 1599, 1686, 2479,
	1599, 2600, 1742, 1752, 36, 168, 2489, 2610, 180, 2490, 1599, 2611, 2720, 2721, 192, 202, 1807, 203, 1808, 1818,
	204, 46, 47, 48, 13, 169, 2469, 181, 25, 169, 2500, 2621, 181, 2480, 2731, 2601, 193, 193, 37, 169,
	2500, 2621, 181, 2501, 1599, 2622, 2731, 2732, 193, 2491, 2830, 2612, 2830, 2831, 2722, 205, 205, 205, 49, 169,
	214, 215, 181, 214, 1873, 215, 216, 216, 193, 214, 1873, 215, 1874, 1884, 216, 217, 217, 217, 205, 58,
	58, 59, 58, 59, 60, 58, 59, 60, 61, 10, 166, 178, 22, 11, 1609, 2467, 1675, 23, 167, 2478,
	2599, 179, 190, 1741, 191, 34, 35, 12, 1610, 2468, 1676, 24, 1620, 3325, 3545, 1686, 2479, 3765, 2600, 1742,
	1752, 36, 168, 2489, 2610, 180, 2490, 3985, 2611, 2720, 2721, 192, 202, 1807, 203, 1808, 1818, 204, 46, 47,
	48, 13, 1611, 2469, 1677, 25, 1621, 3326, 3546, 1687, 2480, 3766, 2601, 1743, 1753, 37, 1630, 3335, 3555, 1696,
	3380, 1599, 1600, 3775, 1600, 1762, 2491, 3986, 2612, 3995, 1600, 2722, 1809, 1819, 1828, 49, 169, 2500, 2621, 181,
	2501, 4205, 2622, 2731, 2732, 193, 2502, 4206, 2623, 4215, 1600, 2733, 2830, 2831, 2832, 205, 214, 1873, 215, 1874,
	1884, 216, 1875, 1885, 1894, 217, 58, 59, 60, 61, 14, 170, 2470, 182, 26, 170, 2511, 2632, 182, 2481,
	2742, 2602, 194, 194, 38, 170, 2511, 2632, 182, 2512, 4425, 2633, 2742, 2743, 194, 2492, 2841, 2613, 2841, 2842,
	2723, 206, 206, 206, 50, 170, 2511, 2632, 182, 2512, 4425, 2633, 2742, 2743, 194, 2513, 4426, 2634, 4435, 1600,
	2744, 2841, 2842, 2843, 206, 2503, 2929, 2624, 2929, 2930, 2734, 2929, 2930, 2931, 2833, 218, 218, 218, 218, 62,
	170, 226, 227, 182, 226, 1939, 227, 228, 228, 194, 226, 1939, 227, 1940, 1950, 228, 229, 229, 229, 206,
	226, 1939, 227, 1940, 1950, 228, 1941, 1951, 1960, 229, 230, 230, 230, 230, 218, 70, 70, 71, 70, 71,
	72, 70, 71, 72, 73, 70, 71, 72, 73, 74, 10, 166, 178, 22, 11, 1609, 2467, 1675, 23, 167,
	2478, 2599, 179, 190, 1741, 191, 34, 35, 12, 1610, 2468, 1676, 24, 1620, 3325, 3545, 1686, 2479, 3765, 2600,
	1742, 1752, 36, 168, 2489, 2610, 180, 2490, 3985, 2611, 2720, 2721, 192, 202, 1807, 203, 1808, 1818, 204, 46,
	47, 48, 13, 1611, 2469, 1677, 25, 1621, 3326, 3546, 1687, 2480, 3766, 2601, 1743, 1753, 37, 1630, 3335, 3555,
	1696, 3380, 1599, 3600, 3775, 3820, 1762, 2491, 3986, 2612, 3995, 4040, 2722, 1809, 1819, 1828, 49, 169, 2500, 2621,
	181, 2501, 4205, 2622, 2731, 2732, 193, 2502, 4206, 2623, 4215, 4260, 2733, 2830, 2831, 2832, 205, 214, 1873, 215,
	1874, 1884, 216, 1875, 1885, 1894, 217, 58, 59, 60, 61, 14, 1612, 2470, 1678, 26, 1622, 3327, 3547, 1688,
	2481, 3767, 2602, 1744, 1754, 38, 1631, 3336, 3556, 1697, 3381, 6185, 3601, 3776, 3821, 1763, 2492, 3987, 2613, 3996,
	4041, 2723, 1810, 1820, 1829, 50, 1639, 3344, 3564, 1705, 3389, 6193, 3609, 3784, 3829, 1771, 3425, 6229, 3645, 1601,
	1600, 1601, 4004, 4049, 1601, 1837, 2503, 4207, 2624, 4216, 4261, 2734, 4224, 4269, 1601, 2833, 1876, 1886, 1895, 1903,
	62, 170, 2511, 2632, 182, 2512, 4425, 2633, 2742, 2743, 194, 2513, 4426, 2634, 4435, 4480, 2744, 2841, 2842, 2843,
	206, 2514, 4427, 2635, 4436, 4481, 2745, 4444, 4489, 1601, 2844, 2929, 2930, 2931, 2932, 218, 226, 1939, 227, 1940,
	1950, 228, 1941, 1951, 1960, 229, 1942, 1952, 1961, 1969, 230, 70, 71, 72, 73, 74, 15, 171, 2471, 183,
	27, 171, 2522, 2643, 183, 2482, 2753, 2603, 195, 195, 39, 171, 2522, 2643, 183, 2523, 4645, 2644, 2753, 2754,
	195, 2493, 2852, 2614, 2852, 2853, 2724, 207, 207, 207, 51, 171, 2522, 2643, 183, 2523, 4645, 2644, 2753, 2754,
	195, 2524, 4646, 2645, 4655, 4700, 2755, 2852, 2853, 2854, 207, 2504, 2940, 2625, 2940, 2941, 2735, 2940, 2941, 2942,
	2834, 219, 219, 219, 219, 63, 171, 2522, 2643, 183, 2523, 4645, 2644, 2753, 2754, 195, 2524, 4646, 2645, 4655,
	4700, 2755, 2852, 2853, 2854, 207, 2525, 4647, 2646, 4656, 4701, 2756, 4664, 4709, 1601, 2855, 2940, 2941, 2942, 2943,
	219, 2515, 3017, 2636, 3017, 3018, 2746, 3017, 3018, 3019, 2845, 3017, 3018, 3019, 3020, 2933, 231, 231, 231, 231,
	231, 75, 171, 238, 239, 183, 238, 2005, 239, 240, 240, 195, 238, 2005, 239, 2006, 2016, 240, 241, 241,
	241, 207, 238, 2005, 239, 2006, 2016, 240, 2007, 2017, 2026, 241, 242, 242, 242, 242, 219, 238, 2005, 239,
	2006, 2016, 240, 2007, 2017, 2026, 241, 2008, 2018, 2027, 2035, 242, 243, 243, 243, 243, 243, 231, 82, 82,
	83, 82, 83, 84, 82, 83, 84, 85, 82, 83, 84, 85, 86, 82, 83, 84, 85, 86, 87, 10,
	166, 178, 22, 11, 1609, 2467, 1675, 23, 167, 2478, 2599, 179, 190, 1741, 191, 34, 35, 12, 1610, 2468,
	1676, 24, 1620, 3325, 3545, 1686, 2479, 3765, 2600, 1742, 1752, 36, 168, 2489, 2610, 180, 2490, 3985, 2611, 2720,
	2721, 192, 202, 1807, 203, 1808, 1818, 204, 46, 47, 48, 13, 1611, 2469, 1677, 25, 1621, 3326, 3546, 1687,
	2480, 3766, 2601, 1743, 1753, 37, 1630, 3335, 3555, 1696, 3380, 1599, 3600, 3775, 3820, 1762, 2491, 3986, 2612, 3995,
	4040, 2722, 1809, 1819, 1828, 49, 169, 2500, 2621, 181, 2501, 4205, 2622, 2731, 2732, 193, 2502, 4206, 2623, 4215,
	4260, 2733, 2830, 2831, 2832, 205, 214, 1873, 215, 1874, 1884, 216, 1875, 1885, 1894, 217, 58, 59, 60, 61,
	14, 1612, 2470, 1678, 26, 1622, 3327, 3547, 1688, 2481, 3767, 2602, 1744, 1754, 38, 1631, 3336, 3556, 1697, 3381,
	6185, 3601, 3776, 3821, 1763, 2492, 3987, 2613, 3996, 4041, 2723, 1810, 1820, 1829, 50, 1639, 3344, 3564, 1705, 3389,
	6193, 3609, 3784, 3829, 1771, 3425, 6229, 3645, 6349, 1600, 3865, 4004, 4049, 4085, 1837, 2503, 4207, 2624, 4216, 4261,
	2734, 4224, 4269, 4305, 2833, 1876, 1886, 1895, 1903, 62, 170, 2511, 2632, 182, 2512, 4425, 2633, 2742, 2743, 194,
	2513, 4426, 2634, 4435, 4480, 2744, 2841, 2842, 2843, 206, 2514, 4427, 2635, 4436, 4481, 2745, 4444, 4489, 4525, 2844,
	2929, 2930, 2931, 2932, 218, 226, 1939, 227, 1940, 1950, 228, 1941, 1951, 1960, 229, 1942, 1952, 1961, 1969, 230,
	70, 71, 72, 73, 74, 15, 1613, 2471, 1679, 27, 1623, 3328, 3548, 1689, 2482, 3768, 2603, 1745, 1755, 39,
	1632, 3337, 3557, 1698, 3382, 6186, 3602, 3777, 3822, 1764, 2493, 3988, 2614, 3997, 4042, 2724, 1811, 1821, 1830, 51,
	1640, 3345, 3565, 1706, 3390, 6194, 3610, 3785, 3830, 1772, 3426, 6230, 3646, 6350, 6678, 3866, 4005, 4050, 4086, 1838,
	2504, 4208, 2625, 4217, 4262, 2735, 4225, 4270, 4306, 2834, 1877, 1887, 1896, 1904, 63, 1647, 3352, 3572, 1713, 3397,
	6201, 3617, 3792, 3837, 1779, 3433, 6237, 3653, 6357, 6685, 3873, 4012, 4057, 4093, 1845, 1603, 1603, 1603, 1603, 1603,
	1603, 1602, 1602, 1601, 1602, 1603, 1603, 1603, 1602, 1603, 2515, 4428, 2636, 4437, 4482, 2746, 4445, 4490, 4526, 2845,
	1603, 1603, 1603, 1602, 1603, 1943, 1953, 1962, 1970, 1603, 75, 171, 2522, 2643, 183, 2523, 4645, 2644, 2753, 2754,
	195, 2524, 4646, 2645, 4655, 4700, 2755, 2852, 2853, 2854, 207, 2525, 4647, 2646, 4656, 4701, 2756, 4664, 4709, 4745,
	2855, 2940, 2941, 2942, 2943, 219, 2526, 4648, 2647, 4657, 4702, 2757, 4665, 4710, 4746, 2856, 1603, 1603, 1603, 1602,
	1603, 3017, 3018, 3019, 3020, 1603, 231, 238, 2005, 239, 2006, 2016, 240, 2007, 2017, 2026, 241, 2008, 2018, 2027,
	2035, 242, 2009, 2019, 2028, 2036, 1603, 243, 82, 83, 84, 85, 86, 87, 16, 172, 2472, 184, 28, 172,
	2533, 2654, 184, 2483, 2764, 2604, 196, 196, 40, 172, 2533, 2654, 184, 2534, 4865, 2655, 2764, 2765, 196, 2494,
	2863, 2615, 2863, 2864, 2725, 208, 208, 208, 52, 172, 2533, 2654, 184, 2534, 4865, 2655, 2764, 2765, 196, 2535,
	4866, 2656, 4875, 4920, 2766, 2863, 2864, 2865, 208, 2505, 2951, 2626, 2951, 2952, 2736, 2951, 2952, 2953, 2835, 220,
	220, 220, 220, 64, 172, 2533, 2654, 184, 2534, 4865, 2655, 2764, 2765, 196, 2535, 4866, 2656, 4875, 4920, 2766,
	2863, 2864, 2865, 208, 2536, 4867, 2657, 4876, 4921, 2767, 4884, 4929, 4965, 2866, 2951, 2952, 2953, 2954, 220, 2516,
	3028, 2637, 3028, 3029, 2747, 3028, 3029, 3030, 2846, 3028, 3029, 3030, 3031, 2934, 232, 232, 232, 232, 232, 76,
	172, 2533, 2654, 184, 2534, 4865, 2655, 2764, 2765, 196, 2535, 4866, 2656, 4875, 4920, 2766, 2863, 2864, 2865, 208,
	2536, 4867, 2657, 4876, 4921, 2767, 4884, 4929, 4965, 2866, 2951, 2952, 2953, 2954, 220, 2537, 4868, 2658, 4877, 4922,
	2768, 4885, 4930, 4966, 2867, 1603, 1603, 1603, 1602, 1603, 3028, 3029, 3030, 3031, 1603, 232, 2527, 3094, 2648, 3094,
	3095, 2758, 3094, 3095, 3096, 2857, 3094, 3095, 3096, 3097, 2945, 3094, 3095, 3096, 3097, 1603, 3022, 244, 244, 244,
	244, 244, 244, 88, 172, 250, 251, 184, 250, 2071, 251, 252, 252, 196, 250, 2071, 251, 2072, 2082, 252,
	253, 253, 253, 208, 250, 2071, 251, 2072, 2082, 252, 2073, 2083, 2092, 253, 254, 254, 254, 254, 220, 250,
	2071, 251, 2072, 2082, 252, 2073, 2083, 2092, 253, 2074, 2084, 2093, 2101, 254, 255, 255, 255, 255, 255, 232,
	250, 2071, 251, 2072, 2082, 252, 2073, 2083, 2092, 253, 2074, 2084, 2093, 2101, 254, 2075, 2085, 2094, 2102, 1603,
	255, 256, 256, 256, 256, 256, 256, 244, 94, 94, 95, 94, 95, 96, 94, 95, 96, 97, 94, 95,
	96, 97, 98, 94, 95, 96, 97, 98, 99, 94, 95, 96, 97, 98, 99, 100, 10, 166, 178, 22,
	11, 173, 2467, 185, 23, 167, 2478, 2599, 179, 190, 197, 191, 34, 35, 12, 173, 2468, 185, 24, 173,
	2544, 2665, 185, 2479, 2775, 2600, 197, 197, 36, 168, 2489, 2610, 180, 2490, 2874, 2611, 2720, 2721, 192, 202,
	209, 203, 209, 209, 204, 46, 47, 48, 13, 173, 2469, 185, 25, 173, 2544, 2665, 185, 2480, 2775, 2601,
	197, 197, 37, 173, 2544, 2665, 185, 2545, 1599, 2666, 2775, 2776, 197, 2491, 2874, 2612, 2874, 2875, 2722, 209,
	209, 209, 49, 169, 2500, 2621, 181, 2501, 2962, 2622, 2731, 2732, 193, 2502, 2962, 2623, 2962, 2963, 2733, 2830,
	2831, 2832, 205, 214, 221, 215, 221, 221, 216, 221, 221, 221, 217, 58, 59, 60, 61, 14, 173, 2470,
	185, 26, 173, 2544, 2665, 185, 2481, 2775, 2602, 197, 197, 38, 173, 2544, 2665, 185, 2545, 5085, 2666, 2775,
	2776, 197, 2492, 2874, 2613, 2874, 2875, 2723, 209, 209, 209, 50, 173, 2544, 2665, 185, 2545, 5085, 2666, 2775,
	2776, 197, 2546, 5086, 2667, 5095, 1600, 2777, 2874, 2875, 2876, 209, 2503, 2962, 2624, 2962, 2963, 2734, 2962, 2963,
	2964, 2833, 221, 221, 221, 221, 62, 170, 2511, 2632, 182, 2512, 3039, 2633, 2742, 2743, 194, 2513, 3039, 2634,
	3039, 3040, 2744, 2841, 2842, 2843, 206, 2514, 3039, 2635, 3039, 3040, 2745, 3039, 3040, 3041, 2844, 2929, 2930, 2931,
	2932, 218, 226, 233, 227, 233, 233, 228, 233, 233, 233, 229, 233, 233, 233, 233, 230, 70, 71, 72,
	73, 74, 15, 173, 2471, 185, 27, 173, 2544, 2665, 185, 2482, 2775, 2603, 197, 197, 39, 173, 2544, 2665,
	185, 2545, 5085, 2666, 2775, 2776, 197, 2493, 2874, 2614, 2874, 2875, 2724, 209, 209, 209, 51, 173, 2544, 2665,
	185, 2545, 5085, 2666, 2775, 2776, 197, 2546, 5086, 2667, 5095, 5140, 2777, 2874, 2875, 2876, 209, 2504, 2962, 2625,
	2962, 2963, 2735, 2962, 2963, 2964, 2834, 221, 221, 221, 221, 63, 173, 2544, 2665, 185, 2545, 5085, 2666, 2775,
	2776, 197, 2546, 5086, 2667, 5095, 5140, 2777, 2874, 2875, 2876, 209, 2547, 5087, 2668, 5096, 5141, 2778, 5104, 5149,
	1601, 2877, 2962, 2963, 2964, 2965, 221, 2515, 3039, 2636, 3039, 3040, 2746, 3039, 3040, 3041, 2845, 3039, 3040, 3041,
	3042, 2933, 233, 233, 233, 233, 233, 75, 171, 2522, 2643, 183, 2523, 3105, 2644, 2753, 2754, 195, 2524, 3105,
	2645, 3105, 3106, 2755, 2852, 2853, 2854, 207, 2525, 3105, 2646, 3105, 3106, 2756, 3105, 3106, 3107, 2855, 2940, 2941,
	2942, 2943, 219, 2526, 3105, 2647, 3105, 3106, 2757, 3105, 3106, 3107, 2856, 3105, 3106, 3107, 3108, 2944, 3017, 3018,
	3019, 3020, 3021, 231, 238, 245, 239, 245, 245, 240, 245, 245, 245, 241, 245, 245, 245, 245, 242, 245,
	245, 245, 245, 245, 243, 82, 83, 84, 85, 86, 87, 16, 173, 2472, 185, 28, 173, 2544, 2665, 185,
	2483, 2775, 2604, 197, 197, 40, 173, 2544, 2665, 185, 2545, 5085, 2666, 2775, 2776, 197, 2494, 2874, 2615, 2874,
	2875, 2725, 209, 209, 209, 52, 173, 2544, 2665, 185, 2545, 5085, 2666, 2775, 2776, 197, 2546, 5086, 2667, 5095,
	5140, 2777, 2874, 2875, 2876, 209, 2505, 2962, 2626, 2962, 2963, 2736, 2962, 2963, 2964, 2835, 221, 221, 221, 221,
	64, 173, 2544, 2665, 185, 2545, 5085, 2666, 2775, 2776, 197, 2546, 5086, 2667, 5095, 5140, 2777, 2874, 2875, 2876,
	209, 2547, 5087, 2668, 5096, 5141, 2778, 5104, 5149, 5185, 2877, 2962, 2963, 2964, 2965, 221, 2516, 3039, 2637, 3039,
	3040, 2747, 3039, 3040, 3041, 2846, 3039, 3040, 3041, 3042, 2934, 233, 233, 233, 233, 233, 76, 173, 2544, 2665,
	185, 2545, 5085, 2666, 2775, 2776, 197, 2546, 5086, 2667, 5095, 5140, 2777, 2874, 2875, 2876, 209, 2547, 5087, 2668,
	5096, 5141, 2778, 5104, 5149, 5185, 2877, 2962, 2963, 2964, 2965, 221, 2548, 5088, 2669, 5097, 5142, 2779, 5105, 5150,
	5186, 2878, 1603, 1603, 1603, 1602, 1603, 3039, 3040, 3041, 3042, 1603, 233, 2527, 3105, 2648, 3105, 3106, 2758, 3105,
	3106, 3107, 2857, 3105, 3106, 3107, 3108, 2945, 3105, 3106, 3107, 3108, 1603, 3022, 245, 245, 245, 245, 245, 245,
	88, 172, 2533, 2654, 184, 2534, 3160, 2655, 2764, 2765, 196, 2535, 3160, 2656, 3160, 3161, 2766, 2863, 2864, 2865,
	208, 2536, 3160, 2657, 3160, 3161, 2767, 3160, 3161, 3162, 2866, 2951, 2952, 2953, 2954, 220, 2537, 3160, 2658, 3160,
	3161, 2768, 3160, 3161, 3162, 2867, 3160, 3161, 3162, 3163, 2955, 3028, 3029, 3030, 3031, 3032, 232, 2538, 3160, 2659,
	3160, 3161, 2769, 3160, 3161, 3162, 2868, 3160, 3161, 3162, 3163, 2956, 3160, 3161, 3162, 3163, 1603, 3033, 3094, 3095,
	3096, 3097, 3098, 3099, 244, 250, 257, 251, 257, 257, 252, 257, 257, 257, 253, 257, 257, 257, 257, 254,
	257, 257, 257, 257, 257, 255, 257, 257, 257, 257, 257, 257, 256, 94, 95, 96, 97, 98, 99, 100,
	17, 173, 262, 185, 29, 173, 262, 263, 185, 262, 264, 263, 197, 197, 41, 173, 262, 263, 185, 262,
	2137, 263, 264, 264, 197, 262, 265, 263, 265, 265, 264, 209, 209, 209, 53, 173, 262, 263, 185, 262,
	2137, 263, 264, 264, 197, 262, 2137, 263, 2138, 2148, 264, 265, 265, 265, 209, 262, 266, 263, 266, 266,
	264, 266, 266, 266, 265, 221, 221, 221, 221, 65, 173, 262, 263, 185, 262, 2137, 263, 264, 264, 197,
	262, 2137, 263, 2138, 2148, 264, 265, 265, 265, 209, 262, 2137, 263, 2138, 2148, 264, 2139, 2149, 2158, 265,
	266, 266, 266, 266, 221, 262, 267, 263, 267, 267, 264, 267, 267, 267, 265, 267, 267, 267, 267, 266,
	233, 233, 233, 233, 233, 77, 173, 262, 263, 185, 262, 2137, 263, 264, 264, 197, 262, 2137, 263, 2138,
	2148, 264, 265, 265, 265, 209, 262, 2137, 263, 2138, 2148, 264, 2139, 2149, 2158, 265, 266, 266, 266, 266,
	221, 262, 2137, 263, 2138, 2148, 264, 2139, 2149, 2158, 265, 2140, 2150, 2159, 2167, 266, 267, 267, 267, 267,
	267, 233, 262, 268, 263, 268, 268, 264, 268, 268, 268, 265, 268, 268, 268, 268, 266, 268, 268, 268,
	268, 268, 267, 245, 245, 245, 245, 245, 245, 89, 173, 262, 263, 185, 262, 2137, 263, 264, 264, 197,
	262, 2137, 263, 2138, 2148, 264, 265, 265, 265, 209, 262, 2137, 263, 2138, 2148, 264, 2139, 2149, 2158, 265,
	266, 266, 266, 266, 221, 262, 2137, 263, 2138, 2148, 264, 2139, 2149, 2158, 265, 2140, 2150, 2159, 2167, 266,
	267, 267, 267, 267, 267, 233, 262, 2137, 263, 2138, 2148, 264, 2139, 2149, 2158, 265, 2140, 2150, 2159, 2167,
	266, 2141, 2151, 2160, 2168, 1603, 267, 268, 268, 268, 268, 268, 268, 245, 262, 269, 263, 269, 269, 264,
	269, 269, 269, 265, 269, 269, 269, 269, 266, 269, 269, 269, 269, 269, 267, 269, 269, 269, 269, 269,
	269, 268, 257, 257, 257, 257, 257, 257, 257, 101, 106, 106, 106, 107, 106, 106, 107, 106, 107, 108,
	106, 106, 107, 106, 107, 108, 106, 107, 108, 109, 106, 106, 107, 106, 107, 108, 106, 107, 108, 109,
	106, 107, 108, 109, 110, 106, 106, 107, 106, 107, 108, 106, 107, 108, 109, 106, 107, 108, 109, 110,
	106, 107, 108, 109, 110, 111, 106, 106, 107, 106, 107, 108, 106, 107, 108, 109, 106, 107, 108, 109,
	110, 106, 107, 108, 109, 110, 111, 106, 107, 108, 109, 110, 111, 112, 106, 106, 107, 106, 107, 108,
	106, 107, 108, 109, 106, 107, 108, 109, 110, 106, 107, 108, 109, 110, 111, 106, 107, 108, 109, 110,
	111, 112, 106, 107, 108, 109, 110, 111, 112, 113, 10, 166, 22, 10, 166, 178, 22, 11, 167, 2467,
	179, 23, 167, 190, 191, 179, 34, 34, 35, 10, 166, 178, 22, 11, 1609, 2467, 1675, 23, 167, 2478,
	2599, 179, 190, 1741, 191, 34, 35, 12, 168, 2468, 180, 24, 168, 2489, 2610, 180, 2479, 2720, 2600, 192,
	192, 36, 168, 202, 203, 180, 202, 1807, 203, 204, 204, 192, 46, 46, 47, 46, 47, 48, 10, 166,
	178, 22, 11, 1609, 2467, 1675, 23, 167, 2478, 2599, 179, 190, 1741, 191, 34, 35, 12, 1610, 2468, 1676,
	24, 1620, 1599, 1599, 1686, 2479, 1599, 2600, 1742, 1752, 36, 168, 2489, 2610, 180, 2490, 1599, 2611, 2720, 2721,
	192, 202, 1807, 203, 1808, 1818, 204, 46, 47, 48, 13, 169, 2469, 181, 25, 169, 2500, 2621, 181, 2480,
	2731, 2601, 193, 193, 37, 169, 2500, 2621, 181, 2501, 1599, 2622, 2731, 2732, 193, 2491, 2830, 2612, 2830, 2831,
	2722, 205, 205, 205, 49, 169, 214, 215, 181, 214, 1873, 215, 216, 216, 193, 214, 1873, 215, 1874, 1884,
	216, 217, 217, 217, 205, 58, 58, 59, 58, 59, 60, 58, 59, 60, 61, 10, 166, 178, 22, 11,
	1609, 2467, 1675, 23, 167, 2478, 2599, 179, 190, 1741, 191, 34, 35, 12, 1610, 2468, 1676, 24, 1620, 3325,
	3545, 1686, 2479, 3765, 2600, 1742, 1752, 36, 168, 2489, 2610, 180, 2490, 3985, 2611, 2720, 2721, 192, 202, 1807,
	203, 1808, 1818, 204, 46, 47, 48, 13, 1611, 2469, 1677, 25, 1621, 3326, 3546, 1687, 2480, 3766, 2601, 1743,
	1753, 37, 1630, 3335, 3555, 1696, 3380, 1599, 1600, 3775, 1600, 1762, 2491, 3986, 2612, 3995, 1600, 2722, 1809, 1819,
	1828, 49, 169, 2500, 2621, 181, 2501, 4205, 2622, 2731, 2732, 193, 2502, 4206, 2623, 4215, 1600, 2733, 2830, 2831,
	2832, 205, 214, 1873, 215, 1874, 1884, 216, 1875, 1885, 1894, 217, 58, 59, 60, 61, 14, 170, 2470, 182,
	26, 170, 2511, 2632, 182, 2481, 2742, 2602, 194, 194, 38, 170, 2511, 2632, 182, 2512, 4425, 2633, 2742, 2743,
	194, 2492, 2841, 2613, 2841, 2842, 2723, 206, 206, 206, 50, 170, 2511, 2632, 182, 2512, 4425, 2633, 2742, 2743,
	194, 2513, 4426, 2634, 4435, 1600, 2744, 2841, 2842, 2843, 206, 2503, 2929, 2624, 2929, 2930, 2734, 2929, 2930, 2931,
	2833, 218, 218, 218, 218, 62, 170, 226, 227, 182, 226, 1939, 227, 228, 228, 194, 226, 1939, 227, 1940,
	1950, 228, 229, 229, 229, 206, 226, 1939, 227, 1940, 1950, 228, 1941, 1951, 1960, 229, 230, 230, 230, 230,
	218, 70, 70, 71, 70, 71, 72, 70, 71, 72, 73, 70, 71, 72, 73, 74, 10, 166, 178, 22,
	11, 1609, 2467, 1675, 23, 167, 2478, 2599, 179, 190, 1741, 191, 34, 35, 12, 1610, 2468, 1676, 24, 1620,
	3325, 3545, 1686, 2479, 3765, 2600, 1742, 1752, 36, 168, 2489, 2610, 180, 2490, 3985, 2611, 2720, 2721, 192, 202,
	1807, 203, 1808, 1818, 204, 46, 47, 48, 13, 1611, 2469, 1677, 25, 1621, 3326, 3546, 1687, 2480, 3766, 2601,
	1743, 1753, 37, 1630, 3335, 3555, 1696, 3380, 1599, 3600, 3775, 3820, 1762, 2491, 3986, 2612, 3995, 4040, 2722, 1809,
	1819, 1828, 49, 169, 2500, 2621, 181, 2501, 4205, 2622, 2731, 2732, 193, 2502, 4206, 2623, 4215, 4260, 2733, 2830,
	2831, 2832, 205, 214, 1873, 215, 1874, 1884, 216, 1875, 1885, 1894, 217, 58, 59, 60, 61, 14, 1612, 2470,
	1678, 26, 1622, 3327, 3547, 1688, 2481, 3767, 2602, 1744, 1754, 38, 1631, 3336, 3556, 1697, 3381, 6185, 3601, 3776,
	3821, 1763, 2492, 3987, 2613, 3996, 4041, 2723, 1810, 1820, 1829, 50, 1639, 3344, 3564, 1705, 3389, 6193, 3609, 3784,
	3829, 1771, 3425, 6229, 3645, 1601, 1600, 1601, 4004, 4049, 1601, 1837, 2503, 4207, 2624, 4216, 4261, 2734, 4224, 4269,
	1601, 2833, 1876, 1886, 1895, 1903, 62, 170, 2511, 2632, 182, 2512, 4425, 2633, 2742, 2743, 194, 2513, 4426, 2634,
	4435, 4480, 2744, 2841, 2842, 2843, 206, 2514, 4427, 2635, 4436, 4481, 2745, 4444, 4489, 1601, 2844, 2929, 2930, 2931,
	2932, 218, 226, 1939, 227, 1940, 1950, 228, 1941, 1951, 1960, 229, 1942, 1952, 1961, 1969, 230, 70, 71, 72,
	73, 74, 15, 171, 2471, 183, 27, 171, 2522, 2643, 183, 2482, 2753, 2603, 195, 195, 39, 171, 2522, 2643,
	183, 2523, 4645, 2644, 2753, 2754, 195, 2493, 2852, 2614, 2852, 2853, 2724, 207, 207, 207, 51, 171, 2522, 2643,
	183, 2523, 4645, 2644, 2753, 2754, 195, 2524, 4646, 2645, 4655, 4700, 2755, 2852, 2853, 2854, 207, 2504, 2940, 2625,
	2940, 2941, 2735, 2940, 2941, 2942, 2834, 219, 219, 219, 219, 63, 171, 2522, 2643, 183, 2523, 4645, 2644, 2753,
	2754, 195, 2524, 4646, 2645, 4655, 4700, 2755, 2852, 2853, 2854, 207, 2525, 4647, 2646, 4656, 4701, 2756, 4664, 4709,
	1601, 2855, 2940, 2941, 2942, 2943, 219, 2515, 3017, 2636, 3017, 3018, 2746, 3017, 3018, 3019, 2845, 3017, 3018, 3019,
	3020, 2933, 231, 231, 231, 231, 231, 75, 171, 238, 239, 183, 238, 2005, 239, 240, 240, 195, 238, 2005,
	239, 2006, 2016, 240, 241, 241, 241, 207, 238, 2005, 239, 2006, 2016, 240, 2007, 2017, 2026, 241, 242, 242,
	242, 242, 219, 238, 2005, 239, 2006, 2016, 240, 2007, 2017, 2026, 241, 2008, 2018, 2027, 2035, 242, 243, 243,
	243, 243, 243, 231, 82, 82, 83, 82, 83, 84, 82, 83, 84, 85, 82, 83, 84, 85, 86, 82,
	83, 84, 85, 86, 87, 10, 166, 178, 22, 11, 1609, 2467, 1675, 23, 167, 2478, 2599, 179, 190, 1741,
	191, 34, 35, 12, 1610, 2468, 1676, 24, 1620, 3325, 3545, 1686, 2479, 3765, 2600, 1742, 1752, 36, 168, 2489,
	2610, 180, 2490, 3985, 2611, 2720, 2721, 192, 202, 1807, 203, 1808, 1818, 204, 46, 47, 48, 13, 1611, 2469,
	1677, 25, 1621, 3326, 3546, 1687, 2480, 3766, 2601, 1743, 1753, 37, 1630, 3335, 3555, 1696, 3380, 1599, 3600, 3775,
	3820, 1762, 2491, 3986, 2612, 3995, 4040, 2722, 1809, 1819, 1828, 49, 169, 2500, 2621, 181, 2501, 4205, 2622, 2731,
	2732, 193, 2502, 4206, 2623, 4215, 4260, 2733, 2830, 2831, 2832, 205, 214, 1873, 215, 1874, 1884, 216, 1875, 1885,
	1894, 217, 58, 59, 60, 61, 14, 1612, 2470, 1678, 26, 1622, 3327, 3547, 1688, 2481, 3767, 2602, 1744, 1754,
	38, 1631, 3336, 3556, 1697, 3381, 6185, 3601, 3776, 3821, 1763, 2492, 3987, 2613, 3996, 4041, 2723, 1810, 1820, 1829,
	50, 1639, 3344, 3564, 1705, 3389, 6193, 3609, 3784, 3829, 1771, 3425, 6229, 3645, 6349, 1600, 3865, 4004, 4049, 4085,
	1837, 2503, 4207, 2624, 4216, 4261, 2734, 4224, 4269, 4305, 2833, 1876, 1886, 1895, 1903, 62, 170, 2511, 2632, 182,
	2512, 4425, 2633, 2742, 2743, 194, 2513, 4426, 2634, 4435, 4480, 2744, 2841, 2842, 2843, 206, 2514, 4427, 2635, 4436,
	4481, 2745, 4444, 4489, 4525, 2844, 2929, 2930, 2931, 2932, 218, 226, 1939, 227, 1940, 1950, 228, 1941, 1951, 1960,
	229, 1942, 1952, 1961, 1969, 230, 70, 71, 72, 73, 74, 15, 1613, 2471, 1679, 27, 1623, 3328, 3548, 1689,
	2482, 3768, 2603, 1745, 1755, 39, 1632, 3337, 3557, 1698, 3382, 6186, 3602, 3777, 3822, 1764, 2493, 3988, 2614, 3997,
	4042, 2724, 1811, 1821, 1830, 51, 1640, 3345, 3565, 1706, 3390, 6194, 3610, 3785, 3830, 1772, 3426, 6230, 3646, 6350,
	6678, 3866, 4005, 4050, 4086, 1838, 2504, 4208, 2625, 4217, 4262, 2735, 4225, 4270, 4306, 2834, 1877, 1887, 1896, 1904,
	63, 1647, 3352, 3572, 1713, 3397, 6201, 3617, 3792, 3837, 1779, 3433, 6237, 3653, 6357, 6685, 3873, 4012, 4057, 4093,
	1845, 3461, 6265, 3681, 6385, 6713, 3901, 1602, 1602, 1601, 1602, 4232, 4277, 4313, 1602, 1911, 2515, 4428, 2636, 4437,
	4482, 2746, 4445, 4490, 4526, 2845, 4452, 4497, 4533, 1602, 2933, 1943, 1953, 1962, 1970, 1977, 75, 171, 2522, 2643,
	183, 2523, 4645, 2644, 2753, 2754, 195, 2524, 4646, 2645, 4655, 4700, 2755, 2852, 2853, 2854, 207, 2525, 4647, 2646,
	4656, 4701, 2756, 4664, 4709, 4745, 2855, 2940, 2941, 2942, 2943, 219, 2526, 4648, 2647, 4657, 4702, 2757, 4665, 4710,
	4746, 2856, 4672, 4717, 4753, 1602, 2944, 3017, 3018, 3019, 3020, 3021, 231, 238, 2005, 239, 2006, 2016, 240, 2007,
	2017, 2026, 241, 2008, 2018, 2027, 2035, 242, 2009, 2019, 2028, 2036, 2043, 243, 82, 83, 84, 85, 86, 87,
	16, 172, 2472, 184, 28, 172, 2533, 2654, 184, 2483, 2764, 2604, 196, 196, 40, 172, 2533, 2654, 184, 2534,
	4865, 2655, 2764, 2765, 196, 2494, 2863, 2615, 2863, 2864, 2725, 208, 208, 208, 52, 172, 2533, 2654, 184, 2534,
	4865, 2655, 2764, 2765, 196, 2535, 4866, 2656, 4875, 4920, 2766, 2863, 2864, 2865, 208, 2505, 2951, 2626, 2951, 2952,
	2736, 2951, 2952, 2953, 2835, 220, 220, 220, 220, 64, 172, 2533, 2654, 184, 2534, 4865, 2655, 2764, 2765, 196,
	2535, 4866, 2656, 4875, 4920, 2766, 2863, 2864, 2865, 208, 2536, 4867, 2657, 4876, 4921, 2767, 4884, 4929, 4965, 2866,
	2951, 2952, 2953, 2954, 220, 2516, 3028, 2637, 3028, 3029, 2747, 3028, 3029, 3030, 2846, 3028, 3029, 3030, 3031, 2934,
	232, 232, 232, 232, 232, 76, 172, 2533, 2654, 184, 2534, 4865, 2655, 2764, 2765, 196, 2535, 4866, 2656, 4875,
	4920, 2766, 2863, 2864, 2865, 208, 2536, 4867, 2657, 4876, 4921, 2767, 4884, 4929, 4965, 2866, 2951, 2952, 2953, 2954,
	220, 2537, 4868, 2658, 4877, 4922, 2768, 4885, 4930, 4966, 2867, 4892, 4937, 4973, 1602, 2955, 3028, 3029, 3030, 3031,
	3032, 232, 2527, 3094, 2648, 3094, 3095, 2758, 3094, 3095, 3096, 2857, 3094, 3095, 3096, 3097, 2945, 3094, 3095, 3096,
	3097, 3098, 3022, 244, 244, 244, 244, 244, 244, 88, 172, 250, 251, 184, 250, 2071, 251, 252, 252, 196,
	250, 2071, 251, 2072, 2082, 252, 253, 253, 253, 208, 250, 2071, 251, 2072, 2082, 252, 2073, 2083, 2092, 253,
	254, 254, 254, 254, 220, 250, 2071, 251, 2072, 2082, 252, 2073, 2083, 2092, 253, 2074, 2084, 2093, 2101, 254,
	255, 255, 255, 255, 255, 232, 250, 2071, 251, 2072, 2082, 252, 2073, 2083, 2092, 253, 2074, 2084, 2093, 2101,
	254, 2075, 2085, 2094, 2102, 2109, 255, 256, 256, 256, 256, 256, 256, 244, 94, 94, 95, 94, 95, 96,
	94, 95, 96, 97, 94, 95, 96, 97, 98, 94, 95, 96, 97, 98, 99, 94, 95, 96, 97, 98,
	99, 100, 10, 166, 178, 22, 11, 1609, 2467, 1675, 23, 167, 2478, 2599, 179, 190, 1741, 191, 34, 35,
	12, 1610, 2468, 1676, 24, 1620, 3325, 3545, 1686, 2479, 3765, 2600, 1742, 1752, 36, 168, 2489, 2610, 180, 2490,
	3985, 2611, 2720, 2721, 192, 202, 1807, 203, 1808, 1818, 204, 46, 47, 48, 13, 1611, 2469, 1677, 25, 1621,
	3326, 3546, 1687, 2480, 3766, 2601, 1743, 1753, 37, 1630, 3335, 3555, 1696, 3380, 1599, 3600, 3775, 3820, 1762, 2491,
	3986, 2612, 3995, 4040, 2722, 1809, 1819, 1828, 49, 169, 2500, 2621, 181, 2501, 4205, 2622, 2731, 2732, 193, 2502,
	4206, 2623, 4215, 4260, 2733, 2830, 2831, 2832, 205, 214, 1873, 215, 1874, 1884, 216, 1875, 1885, 1894, 217, 58,
	59, 60, 61, 14, 1612, 2470, 1678, 26, 1622, 3327, 3547, 1688, 2481, 3767, 2602, 1744, 1754, 38, 1631, 3336,
	3556, 1697, 3381, 6185, 3601, 3776, 3821, 1763, 2492, 3987, 2613, 3996, 4041, 2723, 1810, 1820, 1829, 50, 1639, 3344,
	3564, 1705, 3389, 6193, 3609, 3784, 3829, 1771, 3425, 6229, 3645, 6349, 1600, 3865, 4004, 4049, 4085, 1837, 2503, 4207,
	2624, 4216, 4261, 2734, 4224, 4269, 4305, 2833, 1876, 1886, 1895, 1903, 62, 170, 2511, 2632, 182, 2512, 4425, 2633,
	2742, 2743, 194, 2513, 4426, 2634, 4435, 4480, 2744, 2841, 2842, 2843, 206, 2514, 4427, 2635, 4436, 4481, 2745, 4444,
	4489, 4525, 2844, 2929, 2930, 2931, 2932, 218, 226, 1939, 227, 1940, 1950, 228, 1941, 1951, 1960, 229, 1942, 1952,
	1961, 1969, 230, 70, 71, 72, 73, 74, 15, 1613, 2471, 1679, 27, 1623, 3328, 3548, 1689, 2482, 3768, 2603,
	1745, 1755, 39, 1632, 3337, 3557, 1698, 3382, 6186, 3602, 3777, 3822, 1764, 2493, 3988, 2614, 3997, 4042, 2724, 1811,
	1821, 1830, 51, 1640, 3345, 3565, 1706, 3390, 6194, 3610, 3785, 3830, 1772, 3426, 6230, 3646, 6350, 6678, 3866, 4005,
	4050, 4086, 1838, 2504, 4208, 2625, 4217, 4262, 2735, 4225, 4270, 4306, 2834, 1877, 1887, 1896, 1904, 63, 1647, 3352,
	3572, 1713, 3397, 6201, 3617, 3792, 3837, 1779, 3433, 6237, 3653, 6357, 6685, 3873, 4012, 4057, 4093, 1845, 3461, 6265,
	3681, 6385, 6713, 3901, 6469, 6797, 1601, 4121, 4232, 4277, 4313, 4341, 1911, 2515, 4428, 2636, 4437, 4482, 2746, 4445,
	4490, 4526, 2845, 4452, 4497, 4533, 4561, 2933, 1943, 1953, 1962, 1970, 1977, 75, 171, 2522, 2643, 183, 2523, 4645,
	2644, 2753, 2754, 195, 2524, 4646, 2645, 4655, 4700, 2755, 2852, 2853, 2854, 207, 2525, 4647, 2646, 4656, 4701, 2756,
	4664, 4709, 4745, 2855, 2940, 2941, 2942, 2943, 219, 2526, 4648, 2647, 4657, 4702, 2757, 4665, 4710, 4746, 2856, 4672,
	4717, 4753, 4781, 2944, 3017, 3018, 3019, 3020, 3021, 231, 238, 2005, 239, 2006, 2016, 240, 2007, 2017, 2026, 241,
	2008, 2018, 2027, 2035, 242, 2009, 2019, 2028, 2036, 2043, 243, 82, 83, 84, 85, 86, 87, 16, 1614, 2472,
	1680, 28, 1624, 3329, 3549, 1690, 2483, 3769, 2604, 1746, 1756, 40, 1633, 3338, 3558, 1699, 3383, 6187, 3603, 3778,
	3823, 1765, 2494, 3989, 2615, 3998, 4043, 2725, 1812, 1822, 1831, 52, 1641, 3346, 3566, 1707, 3391, 6195, 3611, 3786,
	3831, 1773, 3427, 6231, 3647, 6351, 6679, 3867, 4006, 4051, 4087, 1839, 2505, 4209, 2626, 4218, 4263, 2736, 4226, 4271,
	4307, 2835, 1878, 1888, 1897, 1905, 64, 1648, 3353, 3573, 1714, 3398, 6202, 3618, 3793, 3838, 1780, 3434, 6238, 3654,
	6358, 6686, 3874, 4013, 4058, 4094, 1846, 3462, 6266, 3682, 6386, 6714, 3902, 6470, 6798, 7007, 4122, 4233, 4278, 4314,
	4342, 1912, 2516, 4429, 2637, 4438, 4483, 2747, 4446, 4491, 4527, 2846, 4453, 4498, 4534, 4562, 2934, 1944, 1954, 1963,
	1971, 1978, 76, 1654, 3359, 3579, 1720, 3404, 6208, 3624, 3799, 3844, 1786, 3440, 6244, 3660, 6364, 6692, 3880, 4019,
	4064, 4100, 1852, 3468, 6272, 3688, 6392, 6720, 3908, 6476, 6804, 7013, 4128, 4239, 4284, 4320, 4348, 1918, 1604, 1604,
	1604, 1604, 1604, 1604, 1604, 1604, 1604, 1604, 1603, 1603, 1603, 1602, 1603, 1604, 1604, 1604, 1604, 1603, 1604, 2527,
	4649, 2648, 4658, 4703, 2758, 4666, 4711, 4747, 2857, 4673, 4718, 4754, 4782, 2945, 1604, 1604, 1604, 1604, 1603, 1604,
	2010, 2020, 2029, 2037, 2044, 1604, 88, 172, 2533, 2654, 184, 2534, 4865, 2655, 2764, 2765, 196, 2535, 4866, 2656,
	4875, 4920, 2766, 2863, 2864, 2865, 208, 2536, 4867, 2657, 4876, 4921, 2767, 4884, 4929, 4965, 2866, 2951, 2952, 2953,
	2954, 220, 2537, 4868, 2658, 4877, 4922, 2768, 4885, 4930, 4966, 2867, 4892, 4937, 4973, 5001, 2955, 3028, 3029, 3030,
	3031, 3032, 232, 2538, 4869, 2659, 4878, 4923, 2769, 4886, 4931, 4967, 2868, 4893, 4938, 4974, 5002, 2956, 1604, 1604,
	1604, 1604, 1603, 1604, 3094, 3095, 3096, 3097, 3098, 1604, 244, 250, 2071, 251, 2072, 2082, 252, 2073, 2083, 2092,
	253, 2074, 2084, 2093, 2101, 254, 2075, 2085, 2094, 2102, 2109, 255, 2076, 2086, 2095, 2103, 2110, 1604, 256, 94,
	95, 96, 97, 98, 99, 100, 17, 173, 2473, 185, 29, 173, 2544, 2665, 185, 2484, 2775, 2605, 197, 197,
	41, 173, 2544, 2665, 185, 2545, 5085, 2666, 2775, 2776, 197, 2495, 2874, 2616, 2874, 2875, 2726, 209, 209, 209,
	53, 173, 2544, 2665, 185, 2545, 5085, 2666, 2775, 2776, 197, 2546, 5086, 2667, 5095, 5140, 2777, 2874, 2875, 2876,
	209, 2506, 2962, 2627, 2962, 2963, 2737, 2962, 2963, 2964, 2836, 221, 221, 221, 221, 65, 173, 2544, 2665, 185,
	2545, 5085, 2666, 2775, 2776, 197, 2546, 5086, 2667, 5095, 5140, 2777, 2874, 2875, 2876, 209, 2547, 5087, 2668, 5096,
	5141, 2778, 5104, 5149, 5185, 2877, 2962, 2963, 2964, 2965, 221, 2517, 3039, 2638, 3039, 3040, 2748, 3039, 3040, 3041,
	2847, 3039, 3040, 3041, 3042, 2935, 233, 233, 233, 233, 233, 77, 173, 2544, 2665, 185, 2545, 5085, 2666, 2775,
	2776, 197, 2546, 5086, 2667, 5095, 5140, 2777, 2874, 2875, 2876, 209, 2547, 5087, 2668, 5096, 5141, 2778, 5104, 5149,
	5185, 2877, 2962, 2963, 2964, 2965, 221, 2548, 5088, 2669, 5097, 5142, 2779, 5105, 5150, 5186, 2878, 5112, 5157, 5193,
	5221, 2966, 3039, 3040, 3041, 3042, 3043, 233, 2528, 3105, 2649, 3105, 3106, 2759, 3105, 3106, 3107, 2858, 3105, 3106,
	3107, 3108, 2946, 3105, 3106, 3107, 3108, 3109, 3023, 245, 245, 245, 245, 245, 245, 89, 173, 2544, 2665, 185,
	2545, 5085, 2666, 2775, 2776, 197, 2546, 5086, 2667, 5095, 5140, 2777, 2874, 2875, 2876, 209, 2547, 5087, 2668, 5096,
	5141, 2778, 5104, 5149, 5185, 2877, 2962, 2963, 2964, 2965, 221, 2548, 5088, 2669, 5097, 5142, 2779, 5105, 5150, 5186,
	2878, 5112, 5157, 5193, 5221, 2966, 3039, 3040, 3041, 3042, 3043, 233, 2549, 5089, 2670, 5098, 5143, 2780, 5106, 5151,
	5187, 2879, 5113, 5158, 5194, 5222, 2967, 1604, 1604, 1604, 1604, 1603, 1604, 3105, 3106, 3107, 3108, 3109, 1604, 245,
	2539, 3160, 2660, 3160, 3161, 2770, 3160, 3161, 3162, 2869, 3160, 3161, 3162, 3163, 2957, 3160, 3161, 3162, 3163, 3164,
	3034, 3160, 3161, 3162, 3163, 3164, 1604, 3100, 257, 257, 257, 257, 257, 257, 257, 101, 173, 262, 263, 185,
	262, 2137, 263, 264, 264, 197, 262, 2137, 263, 2138, 2148, 264, 265, 265, 265, 209, 262, 2137, 263, 2138,
	2148, 264, 2139, 2149, 2158, 265, 266, 266, 266, 266, 221, 262, 2137, 263, 2138, 2148, 264, 2139, 2149, 2158,
	265, 2140, 2150, 2159, 2167, 266, 267, 267, 267, 267, 267, 233, 262, 2137, 263, 2138, 2148, 264, 2139, 2149,
	2158, 265, 2140, 2150, 2159, 2167, 266, 2141, 2151, 2160, 2168, 2175, 267, 268, 268, 268, 268, 268, 268, 245,
	262, 2137, 263, 2138, 2148, 264, 2139, 2149, 2158, 265, 2140, 2150, 2159, 2167, 266, 2141, 2151, 2160, 2168, 2175,
	267, 2142, 2152, 2161, 2169, 2176, 1604, 268, 269, 269, 269, 269, 269, 269, 269, 257, 106, 106, 107, 106,
	107, 108, 106, 107, 108, 109, 106, 107, 108, 109, 110, 106, 107, 108, 109, 110, 111, 106, 107, 108,
	109, 110, 111, 112, 106, 107, 108, 109, 110, 111, 112, 113, 10, 166, 178, 22, 11, 174, 2467, 186,
	23, 167, 2478, 2599, 179, 190, 198, 191, 34, 35, 12, 174, 2468, 186, 24, 174, 2555, 2676, 186, 2479,
	2786, 2600, 198, 198, 36, 168, 2489, 2610, 180, 2490, 2885, 2611, 2720, 2721, 192, 202, 210, 203, 210, 210,
	204, 46, 47, 48, 13, 174, 2469, 186, 25, 174, 2555, 2676, 186, 2480, 2786, 2601, 198, 198, 37, 174,
	2555, 2676, 186, 2556, 1599, 2677, 2786, 2787, 198, 2491, 2885, 2612, 2885, 2886, 2722, 210, 210, 210, 49, 169,
	2500, 2621, 181, 2501, 2973, 2622, 2731, 2732, 193, 2502, 2973, 2623, 2973, 2974, 2733, 2830, 2831, 2832, 205, 214,
	222, 215, 222, 222, 216, 222, 222, 222, 217, 58, 59, 60, 61, 14, 174, 2470, 186, 26, 174, 2555,
	2676, 186, 2481, 2786, 2602, 198, 198, 38, 174, 2555, 2676, 186, 2556, 5305, 2677, 2786, 2787, 198, 2492, 2885,
	2613, 2885, 2886, 2723, 210, 210, 210, 50, 174, 2555, 2676, 186, 2556, 5305, 2677, 2786, 2787, 198, 2557, 5306,
	2678, 5315, 1600, 2788, 2885, 2886, 2887, 210, 2503, 2973, 2624, 2973, 2974, 2734, 2973, 2974, 2975, 2833, 222, 222,
	222, 222, 62, 170, 2511, 2632, 182, 2512, 3050, 2633, 2742, 2743, 194, 2513, 3050, 2634, 3050, 3051, 2744, 2841,
	2842, 2843, 206, 2514, 3050, 2635, 3050, 3051, 2745, 3050, 3051, 3052, 2844, 2929, 2930, 2931, 2932, 218, 226, 234,
	227, 234, 234, 228, 234, 234, 234, 229, 234, 234, 234, 234, 230, 70, 71, 72, 73, 74, 15, 174,
	2471, 186, 27, 174, 2555, 2676, 186, 2482, 2786, 2603, 198, 198, 39, 174, 2555, 2676, 186, 2556, 5305, 2677,
	2786, 2787, 198, 2493, 2885, 2614, 2885, 2886, 2724, 210, 210, 210, 51, 174, 2555, 2676, 186, 2556, 5305, 2677,
	2786, 2787, 198, 2557, 5306, 2678, 5315, 5360, 2788, 2885, 2886, 2887, 210, 2504, 2973, 2625, 2973, 2974, 2735, 2973,
	2974, 2975, 2834, 222, 222, 222, 222, 63, 174, 2555, 2676, 186, 2556, 5305, 2677, 2786, 2787, 198, 2557, 5306,
	2678, 5315, 5360, 2788, 2885, 2886, 2887, 210, 2558, 5307, 2679, 5316, 5361, 2789, 5324, 5369, 1601, 2888, 2973, 2974,
	2975, 2976, 222, 2515, 3050, 2636, 3050, 3051, 2746, 3050, 3051, 3052, 2845, 3050, 3051, 3052, 3053, 2933, 234, 234,
	234, 234, 234, 75, 171, 2522, 2643, 183, 2523, 3116, 2644, 2753, 2754, 195, 2524, 3116, 2645, 3116, 3117, 2755,
	2852, 2853, 2854, 207, 2525, 3116, 2646, 3116, 3117, 2756, 3116, 3117, 3118, 2855, 2940, 2941, 2942, 2943, 219, 2526,
	3116, 2647, 3116, 3117, 2757, 3116, 3117, 3118, 2856, 3116, 3117, 3118, 3119, 2944, 3017, 3018, 3019, 3020, 3021, 231,
	238, 246, 239, 246, 246, 240, 246, 246, 246, 241, 246, 246, 246, 246, 242, 246, 246, 246, 246, 246,
	243, 82, 83, 84, 85, 86, 87, 16, 174, 2472, 186, 28, 174, 2555, 2676, 186, 2483, 2786, 2604, 198,
	198, 40, 174, 2555, 2676, 186, 2556, 5305, 2677, 2786, 2787, 198, 2494, 2885, 2615, 2885, 2886, 2725, 210, 210,
	210, 52, 174, 2555, 2676, 186, 2556, 5305, 2677, 2786, 2787, 198, 2557, 5306, 2678, 5315, 5360, 2788, 2885, 2886,
	2887, 210, 2505, 2973, 2626, 2973, 2974, 2736, 2973, 2974, 2975, 2835, 222, 222, 222, 222, 64, 174, 2555, 2676,
	186, 2556, 5305, 2677, 2786, 2787, 198, 2557, 5306, 2678, 5315, 5360, 2788, 2885, 2886, 2887, 210, 2558, 5307, 2679,
	5316, 5361, 2789, 5324, 5369, 5405, 2888, 2973, 2974, 2975, 2976, 222, 2516, 3050, 2637, 3050, 3051, 2747, 3050, 3051,
	3052, 2846, 3050, 3051, 3052, 3053, 2934, 234, 234, 234, 234, 234, 76, 174, 2555, 2676, 186, 2556, 5305, 2677,
	2786, 2787, 198, 2557, 5306, 2678, 5315, 5360, 2788, 2885, 2886, 2887, 210, 2558, 5307, 2679, 5316, 5361, 2789, 5324,
	5369, 5405, 2888, 2973, 2974, 2975, 2976, 222, 2559, 5308, 2680, 5317, 5362, 2790, 5325, 5370, 5406, 2889, 5332, 5377,
	5413, 1602, 2977, 3050, 3051, 3052, 3053, 3054, 234, 2527, 3116, 2648, 3116, 3117, 2758, 3116, 3117, 3118, 2857, 3116,
	3117, 3118, 3119, 2945, 3116, 3117, 3118, 3119, 3120, 3022, 246, 246, 246, 246, 246, 246, 88, 172, 2533, 2654,
	184, 2534, 3171, 2655, 2764, 2765, 196, 2535, 3171, 2656, 3171, 3172, 2766, 2863, 2864, 2865, 208, 2536, 3171, 2657,
	3171, 3172, 2767, 3171, 3172, 3173, 2866, 2951, 2952, 2953, 2954, 220, 2537, 3171, 2658, 3171, 3172, 2768, 3171, 3172,
	3173, 2867, 3171, 3172, 3173, 3174, 2955, 3028, 3029, 3030, 3031, 3032, 232, 2538, 3171, 2659, 3171, 3172, 2769, 3171,
	3172, 3173, 2868, 3171, 3172, 3173, 3174, 2956, 3171, 3172, 3173, 3174, 3175, 3033, 3094, 3095, 3096, 3097, 3098, 3099,
	244, 250, 258, 251, 258, 258, 252, 258, 258, 258, 253, 258, 258, 258, 258, 254, 258, 258, 258, 258,
	258, 255, 258, 258, 258, 258, 258, 258, 256, 94, 95, 96, 97, 98, 99, 100, 17, 174, 2473, 186,
	29, 174, 2555, 2676, 186, 2484, 2786, 2605, 198, 198, 41, 174, 2555, 2676, 186, 2556, 5305, 2677, 2786, 2787,
	198, 2495, 2885, 2616, 2885, 2886, 2726, 210, 210, 210, 53, 174, 2555, 2676, 186, 2556, 5305, 2677, 2786, 2787,
	198, 2557, 5306, 2678, 5315, 5360, 2788, 2885, 2886, 2887, 210, 2506, 2973, 2627, 2973, 2974, 2737, 2973, 2974, 2975,
	2836, 222, 222, 222, 222, 65, 174, 2555, 2676, 186, 2556, 5305, 2677, 2786, 2787, 198, 2557, 5306, 2678, 5315,
	5360, 2788, 2885, 2886, 2887, 210, 2558, 5307, 2679, 5316, 5361, 2789, 5324, 5369, 5405, 2888, 2973, 2974, 2975, 2976,
	222, 2517, 3050, 2638, 3050, 3051, 2748, 3050, 3051, 3052, 2847, 3050, 3051, 3052, 3053, 2935, 234, 234, 234, 234,
	234, 77, 174, 2555, 2676, 186, 2556, 5305, 2677, 2786, 2787, 198, 2557, 5306, 2678, 5315, 5360, 2788, 2885, 2886,
	2887, 210, 2558, 5307, 2679, 5316, 5361, 2789, 5324, 5369, 5405, 2888, 2973, 2974, 2975, 2976, 222, 2559, 5308, 2680,
	5317, 5362, 2790, 5325, 5370, 5406, 2889, 5332, 5377, 5413, 5441, 2977, 3050, 3051, 3052, 3053, 3054, 234, 2528, 3116,
	2649, 3116, 3117, 2759, 3116, 3117, 3118, 2858, 3116, 3117, 3118, 3119, 2946, 3116, 3117, 3118, 3119, 3120, 3023, 246,
	246, 246, 246, 246, 246, 89, 174, 2555, 2676, 186, 2556, 5305, 2677, 2786, 2787, 198, 2557, 5306, 2678, 5315,
	5360, 2788, 2885, 2886, 2887, 210, 2558, 5307, 2679, 5316, 5361, 2789, 5324, 5369, 5405, 2888, 2973, 2974, 2975, 2976,
	222, 2559, 5308, 2680, 5317, 5362, 2790, 5325, 5370, 5406, 2889, 5332, 5377, 5413, 5441, 2977, 3050, 3051, 3052, 3053,
	3054, 234, 2560, 5309, 2681, 5318, 5363, 2791, 5326, 5371, 5407, 2890, 5333, 5378, 5414, 5442, 2978, 1604, 1604, 1604,
	1604, 1603, 1604, 3116, 3117, 3118, 3119, 3120, 1604, 246, 2539, 3171, 2660, 3171, 3172, 2770, 3171, 3172, 3173, 2869,
	3171, 3172, 3173, 3174, 2957, 3171, 3172, 3173, 3174, 3175, 3034, 3171, 3172, 3173, 3174, 3175, 1604, 3100, 258, 258,
	258, 258, 258, 258, 258, 101, 173, 2544, 2665, 185, 2545, 3215, 2666, 2775, 2776, 197, 2546, 3215, 2667, 3215,
	3216, 2777, 2874, 2875, 2876, 209, 2547, 3215, 2668, 3215, 3216, 2778, 3215, 3216, 3217, 2877, 2962, 2963, 2964, 2965,
	221, 2548, 3215, 2669, 3215, 3216, 2779, 3215, 3216, 3217, 2878, 3215, 3216, 3217, 3218, 2966, 3039, 3040, 3041, 3042,
	3043, 233, 2549, 3215, 2670, 3215, 3216, 2780, 3215, 3216, 3217, 2879, 3215, 3216, 3217, 3218, 2967, 3215, 3216, 3217,
	3218, 3219, 3044, 3105, 3106, 3107, 3108, 3109, 3110, 245, 2550, 3215, 2671, 3215, 3216, 2781, 3215, 3216, 3217, 2880,
	3215, 3216, 3217, 3218, 2968, 3215, 3216, 3217, 3218, 3219, 3045, 3215, 3216, 3217, 3218, 3219, 1604, 3111, 3160, 3161,
	3162, 3163, 3164, 3165, 3166, 257, 262, 270, 263, 270, 270, 264, 270, 270, 270, 265, 270, 270, 270, 270,
	266, 270, 270, 270, 270, 270, 267, 270, 270, 270, 270, 270, 270, 268, 270, 270, 270, 270, 270, 270,
	270, 269, 106, 107, 108, 109, 110, 111, 112, 113, 18, 174, 274, 186, 30, 174, 274, 275, 186, 274,
	276, 275, 198, 198, 42, 174, 274, 275, 186, 274, 2203, 275, 276, 276, 198, 274, 277, 275, 277, 277,
	276, 210, 210, 210, 54, 174, 274, 275, 186, 274, 2203, 275, 276, 276, 198, 274, 2203, 275, 2204, 2214,
	276, 277, 277, 277, 210, 274, 278, 275, 278, 278, 276, 278, 278, 278, 277, 222, 222, 222, 222, 66,
	174, 274, 275, 186, 274, 2203, 275, 276, 276, 198, 274, 2203, 275, 2204, 2214, 276, 277, 277, 277, 210,
	274, 2203, 275, 2204, 2214, 276, 2205, 2215, 2224, 277, 278, 278, 278, 278, 222, 274, 279, 275, 279, 279,
	276, 279, 279, 279, 277, 279, 279, 279, 279, 278, 234, 234, 234, 234, 234, 78, 174, 274, 275, 186,
	274, 2203, 275, 276, 276, 198, 274, 2203, 275, 2204, 2214, 276, 277, 277, 277, 210, 274, 2203, 275, 2204,
	2214, 276, 2205, 2215, 2224, 277, 278, 278, 278, 278, 222, 274, 2203, 275, 2204, 2214, 276, 2205, 2215, 2224,
	277, 2206, 2216, 2225, 2233, 278, 279, 279, 279, 279, 279, 234, 274, 280, 275, 280, 280, 276, 280, 280,
	280, 277, 280, 280, 280, 280, 278, 280, 280, 280, 280, 280, 279, 246, 246, 246, 246, 246, 246, 90,
	174, 274, 275, 186, 274, 2203, 275, 276, 276, 198, 274, 2203, 275, 2204, 2214, 276, 277, 277, 277, 210,
	274, 2203, 275, 2204, 2214, 276, 2205, 2215, 2224, 277, 278, 278, 278, 278, 222, 274, 2203, 275, 2204, 2214,
	276, 2205, 2215, 2224, 277, 2206, 2216, 2225, 2233, 278, 279, 279, 279, 279, 279, 234, 274, 2203, 275, 2204,
	2214, 276, 2205, 2215, 2224, 277, 2206, 2216, 2225, 2233, 278, 2207, 2217, 2226, 2234, 2241, 279, 280, 280, 280,
	280, 280, 280, 246, 274, 281, 275, 281, 281, 276, 281, 281, 281, 277, 281, 281, 281, 281, 278, 281,
	281, 281, 281, 281, 279, 281, 281, 281, 281, 281, 281, 280, 258, 258, 258, 258, 258, 258, 258, 102,
	174, 274, 275, 186, 274, 2203, 275, 276, 276, 198, 274, 2203, 275, 2204, 2214, 276, 277, 277, 277, 210,
	274, 2203, 275, 2204, 2214, 276, 2205, 2215, 2224, 277, 278, 278, 278, 278, 222, 274, 2203, 275, 2204, 2214,
	276, 2205, 2215, 2224, 277, 2206, 2216, 2225, 2233, 278, 279, 279, 279, 279, 279, 234, 274, 2203, 275, 2204,
	2214, 276, 2205, 2215, 2224, 277, 2206, 2216, 2225, 2233, 278, 2207, 2217, 2226, 2234, 2241, 279, 280, 280, 280,
	280, 280, 280, 246, 274, 2203, 275, 2204, 2214, 276, 2205, 2215, 2224, 277, 2206, 2216, 2225, 2233, 278, 2207,
	2217, 2226, 2234, 2241, 279, 2208, 2218, 2227, 2235, 2242, 1604, 280, 281, 281, 281, 281, 281, 281, 281, 258,
	274, 282, 275, 282, 282, 276, 282, 282, 282, 277, 282, 282, 282, 282, 278, 282, 282, 282, 282, 282,
	279, 282, 282, 282, 282, 282, 282, 280, 282, 282, 282, 282, 282, 282, 282, 281, 270, 270, 270, 270,
	270, 270, 270, 270, 114, 118, 118, 118, 119, 118, 118, 119, 118, 119, 120, 118, 118, 119, 118, 119,
	120, 118, 119, 120, 121, 118, 118, 119, 118, 119, 120, 118, 119, 120, 121, 118, 119, 120, 121, 122,
	118, 118, 119, 118, 119, 120, 118, 119, 120, 121, 118, 119, 120, 121, 122, 118, 119, 120, 121, 122,
	123, 118, 118, 119, 118, 119, 120, 118, 119, 120, 121, 118, 119, 120, 121, 122, 118, 119, 120, 121,
	122, 123, 118, 119, 120, 121, 122, 123, 124, 118, 118, 119, 118, 119, 120, 118, 119, 120, 121, 118,
	119, 120, 121, 122, 118, 119, 120, 121, 122, 123, 118, 119, 120, 121, 122, 123, 124, 118, 119, 120,
	121, 122, 123, 124, 125, 118, 118, 119, 118, 119, 120, 118, 119, 120, 121, 118, 119, 120, 121, 122,
	118, 119, 120, 121, 122, 123, 118, 119, 120, 121, 122, 123, 124, 118, 119, 120, 121, 122, 123, 124,
	125, 118, 119, 120, 121, 122, 123, 124, 125, 126, 10, 166, 22, 10, 166, 178, 22, 11, 167, 2467,
	179, 23, 167, 190, 191, 179, 34, 34, 35, 10, 166, 178, 22, 11, 1609, 2467, 1675, 23, 167, 2478,
	2599, 179, 190, 1741, 191, 34, 35, 12, 168, 2468, 180, 24, 168, 2489, 2610, 180, 2479, 2720, 2600, 192,
	192, 36, 168, 202, 203, 180, 202, 1807, 203, 204, 204, 192, 46, 46, 47, 46, 47, 48, 10, 166,
	178, 22, 11, 1609, 2467, 1675, 23, 167, 2478, 2599, 179, 190, 1741, 191, 34, 35, 12, 1610, 2468, 1676,
	24, 1620, 1599, 1599, 1686, 2479, 1599, 2600, 1742, 1752, 36, 168, 2489, 2610, 180, 2490, 1599, 2611, 2720, 2721,
	192, 202, 1807, 203, 1808, 1818, 204, 46, 47, 48, 13, 169, 2469, 181, 25, 169, 2500, 2621, 181, 2480,
	2731, 2601, 193, 193, 37, 169, 2500, 2621, 181, 2501, 1599, 2622, 2731, 2732, 193, 2491, 2830, 2612, 2830, 2831,
	2722, 205, 205, 205, 49, 169, 214, 215, 181, 214, 1873, 215, 216, 216, 193, 214, 1873, 215, 1874, 1884,
	216, 217, 217, 217, 205, 58, 58, 59, 58, 59, 60, 58, 59, 60, 61, 10, 166, 178, 22, 11,
	1609, 2467, 1675, 23, 167, 2478, 2599, 179, 190, 1741, 191, 34, 35, 12, 1610, 2468, 1676, 24, 1620, 3325,
	3545, 1686, 2479, 3765, 2600, 1742, 1752, 36, 168, 2489, 2610, 180, 2490, 3985, 2611, 2720, 2721, 192, 202, 1807,
	203, 1808, 1818, 204, 46, 47, 48, 13, 1611, 2469, 1677, 25, 1621, 3326, 3546, 1687, 2480, 3766, 2601, 1743,
	1753, 37, 1630, 3335, 3555, 1696, 3380, 1599, 1600, 3775, 1600, 1762, 2491, 3986, 2612, 3995, 1600, 2722, 1809, 1819,
	1828, 49, 169, 2500, 2621, 181, 2501, 4205, 2622, 2731, 2732, 193, 2502, 4206, 2623, 4215, 1600, 2733, 2830, 2831,
	2832, 205, 214, 1873, 215, 1874, 1884, 216, 1875, 1885, 1894, 217, 58, 59, 60, 61, 14, 170, 2470, 182,
	26, 170, 2511, 2632, 182, 2481, 2742, 2602, 194, 194, 38, 170, 2511, 2632, 182, 2512, 4425, 2633, 2742, 2743,
	194, 2492, 2841, 2613, 2841, 2842, 2723, 206, 206, 206, 50, 170, 2511, 2632, 182, 2512, 4425, 2633, 2742, 2743,
	194, 2513, 4426, 2634, 4435, 1600, 2744, 2841, 2842, 2843, 206, 2503, 2929, 2624, 2929, 2930, 2734, 2929, 2930, 2931,
	2833, 218, 218, 218, 218, 62, 170, 226, 227, 182, 226, 1939, 227, 228, 228, 194, 226, 1939, 227, 1940,
	1950, 228, 229, 229, 229, 206, 226, 1939, 227, 1940, 1950, 228, 1941, 1951, 1960, 229, 230, 230, 230, 230,
	218, 70, 70, 71, 70, 71, 72, 70, 71, 72, 73, 70, 71, 72, 73, 74, 10, 166, 178, 22,
	11, 1609, 2467, 1675, 23, 167, 2478, 2599, 179, 190, 1741, 191, 34, 35, 12, 1610, 2468, 1676, 24, 1620,
	3325, 3545, 1686, 2479, 3765, 2600, 1742, 1752, 36, 168, 2489, 2610, 180, 2490, 3985, 2611, 2720, 2721, 192, 202,
	1807, 203, 1808, 1818, 204, 46, 47, 48, 13, 1611, 2469, 1677, 25, 1621, 3326, 3546, 1687, 2480, 3766, 2601,
	1743, 1753, 37, 1630, 3335, 3555, 1696, 3380, 1599, 3600, 3775, 3820, 1762, 2491, 3986, 2612, 3995, 4040, 2722, 1809,
	1819, 1828, 49, 169, 2500, 2621, 181, 2501, 4205, 2622, 2731, 2732, 193, 2502, 4206, 2623, 4215, 4260, 2733, 2830,
	2831, 2832, 205, 214, 1873, 215, 1874, 1884, 216, 1875, 1885, 1894, 217, 58, 59, 60, 61, 14, 1612, 2470,
	1678, 26, 1622, 3327, 3547, 1688, 2481, 3767, 2602, 1744, 1754, 38, 1631, 3336, 3556, 1697, 3381, 6185, 3601, 3776,
	3821, 1763, 2492, 3987, 2613, 3996, 4041, 2723, 1810, 1820, 1829, 50, 1639, 3344, 3564, 1705, 3389, 6193, 3609, 3784,
	3829, 1771, 3425, 6229, 3645, 1601, 1600, 1601, 4004, 4049, 1601, 1837, 2503, 4207, 2624, 4216, 4261, 2734, 4224, 4269,
	1601, 2833, 1876, 1886, 1895, 1903, 62, 170, 2511, 2632, 182, 2512, 4425, 2633, 2742, 2743, 194, 2513, 4426, 2634,
	4435, 4480, 2744, 2841, 2842, 2843, 206, 2514, 4427, 2635, 4436, 4481, 2745, 4444, 4489, 1601, 2844, 2929, 2930, 2931,
	2932, 218, 226, 1939, 227, 1940, 1950, 228, 1941, 1951, 1960, 229, 1942, 1952, 1961, 1969, 230, 70, 71, 72,
	73, 74, 15, 171, 2471, 183, 27, 171, 2522, 2643, 183, 2482, 2753, 2603, 195, 195, 39, 171, 2522, 2643,
	183, 2523, 4645, 2644, 2753, 2754, 195, 2493, 2852, 2614, 2852, 2853, 2724, 207, 207, 207, 51, 171, 2522, 2643,
	183, 2523, 4645, 2644, 2753, 2754, 195, 2524, 4646, 2645, 4655, 4700, 2755, 2852, 2853, 2854, 207, 2504, 2940, 2625,
	2940, 2941, 2735, 2940, 2941, 2942, 2834, 219, 219, 219, 219, 63, 171, 2522, 2643, 183, 2523, 4645, 2644, 2753,
	2754, 195, 2524, 4646, 2645, 4655, 4700, 2755, 2852, 2853, 2854, 207, 2525, 4647, 2646, 4656, 4701, 2756, 4664, 4709,
	1601, 2855, 2940, 2941, 2942, 2943, 219, 2515, 3017, 2636, 3017, 3018, 2746, 3017, 3018, 3019, 2845, 3017, 3018, 3019,
	3020, 2933, 231, 231, 231, 231, 231, 75, 171, 238, 239, 183, 238, 2005, 239, 240, 240, 195, 238, 2005,
	239, 2006, 2016, 240, 241, 241, 241, 207, 238, 2005, 239, 2006, 2016, 240, 2007, 2017, 2026, 241, 242, 242,
	242, 242, 219, 238, 2005, 239, 2006, 2016, 240, 2007, 2017, 2026, 241, 2008, 2018, 2027, 2035, 242, 243, 243,
	243, 243, 243, 231, 82, 82, 83, 82, 83, 84, 82, 83, 84, 85, 82, 83, 84, 85, 86, 82,
	83, 84, 85, 86, 87, 10, 166, 178, 22, 11, 1609, 2467, 1675, 23, 167, 2478, 2599, 179, 190, 1741,
	191, 34, 35, 12, 1610, 2468, 1676, 24, 1620, 3325, 3545, 1686, 2479, 3765, 2600, 1742, 1752, 36, 168, 2489,
	2610, 180, 2490, 3985, 2611, 2720, 2721, 192, 202, 1807, 203, 1808, 1818, 204, 46, 47, 48, 13, 1611, 2469,
	1677, 25, 1621, 3326, 3546, 1687, 2480, 3766, 2601, 1743, 1753, 37, 1630, 3335, 3555, 1696, 3380, 1599, 3600, 3775,
	3820, 1762, 2491, 3986, 2612, 3995, 4040, 2722, 1809, 1819, 1828, 49, 169, 2500, 2621, 181, 2501, 4205, 2622, 2731,
	2732, 193, 2502, 4206, 2623, 4215, 4260, 2733, 2830, 2831, 2832, 205, 214, 1873, 215, 1874, 1884, 216, 1875, 1885,
	1894, 217, 58, 59, 60, 61, 14, 1612, 2470, 1678, 26, 1622, 3327, 3547, 1688, 2481, 3767, 2602, 1744, 1754,
	38, 1631, 3336, 3556, 1697, 3381, 6185, 3601, 3776, 3821, 1763, 2492, 3987, 2613, 3996, 4041, 2723, 1810, 1820, 1829,
	50, 1639, 3344, 3564, 1705, 3389, 6193, 3609, 3784, 3829, 1771, 3425, 6229, 3645, 6349, 1600, 3865, 4004, 4049, 4085,
	1837, 2503, 4207, 2624, 4216, 4261, 2734, 4224, 4269, 4305, 2833, 1876, 1886, 1895, 1903, 62, 170, 2511, 2632, 182,
	2512, 4425, 2633, 2742, 2743, 194, 2513, 4426, 2634, 4435, 4480, 2744, 2841, 2842, 2843, 206, 2514, 4427, 2635, 4436,
	4481, 2745, 4444, 4489, 4525, 2844, 2929, 2930, 2931, 2932, 218, 226, 1939, 227, 1940, 1950, 228, 1941, 1951, 1960,
	229, 1942, 1952, 1961, 1969, 230, 70, 71, 72, 73, 74, 15, 1613, 2471, 1679, 27, 1623, 3328, 3548, 1689,
	2482, 3768, 2603, 1745, 1755, 39, 1632, 3337, 3557, 1698, 3382, 6186, 3602, 3777, 3822, 1764, 2493, 3988, 2614, 3997,
	4042, 2724, 1811, 1821, 1830, 51, 1640, 3345, 3565, 1706, 3390, 6194, 3610, 3785, 3830, 1772, 3426, 6230, 3646, 6350,
	6678, 3866, 4005, 4050, 4086, 1838, 2504, 4208, 2625, 4217, 4262, 2735, 4225, 4270, 4306, 2834, 1877, 1887, 1896, 1904,
	63, 1647, 3352, 3572, 1713, 3397, 6201, 3617, 3792, 3837, 1779, 3433, 6237, 3653, 6357, 6685, 3873, 4012, 4057, 4093,
	1845, 3461, 6265, 3681, 6385, 6713, 3901, 1602, 1602, 1601, 1602, 4232, 4277, 4313, 1602, 1911, 2515, 4428, 2636, 4437,
	4482, 2746, 4445, 4490, 4526, 2845, 4452, 4497, 4533, 1602, 2933, 1943, 1953, 1962, 1970, 1977, 75, 171, 2522, 2643,
	183, 2523, 4645, 2644, 2753, 2754, 195, 2524, 4646, 2645, 4655, 4700, 2755, 2852, 2853, 2854, 207, 2525, 4647, 2646,
	4656, 4701, 2756, 4664, 4709, 4745, 2855, 2940, 2941, 2942, 2943, 219, 2526, 4648, 2647, 4657, 4702, 2757, 4665, 4710,
	4746, 2856, 4672, 4717, 4753, 1602, 2944, 3017, 3018, 3019, 3020, 3021, 231, 238, 2005, 239, 2006, 2016, 240, 2007,
	2017, 2026, 241, 2008, 2018, 2027, 2035, 242, 2009, 2019, 2028, 2036, 2043, 243, 82, 83, 84, 85, 86, 87,
	16, 172, 2472, 184, 28, 172, 2533, 2654, 184, 2483, 2764, 2604, 196, 196, 40, 172, 2533, 2654, 184, 2534,
	4865, 2655, 2764, 2765, 196, 2494, 2863, 2615, 2863, 2864, 2725, 208, 208, 208, 52, 172, 2533, 2654, 184, 2534,
	4865, 2655, 2764, 2765, 196, 2535, 4866, 2656, 4875, 4920, 2766, 2863, 2864, 2865, 208, 2505, 2951, 2626, 2951, 2952,
	2736, 2951, 2952, 2953, 2835, 220, 220, 220, 220, 64, 172, 2533, 2654, 184, 2534, 4865, 2655, 2764, 2765, 196,
	2535, 4866, 2656, 4875, 4920, 2766, 2863, 2864, 2865, 208, 2536, 4867, 2657, 4876, 4921, 2767, 4884, 4929, 4965, 2866,
	2951, 2952, 2953, 2954, 220, 2516, 3028, 2637, 3028, 3029, 2747, 3028, 3029, 3030, 2846, 3028, 3029, 3030, 3031, 2934,
	232, 232, 232, 232, 232, 76, 172, 2533, 2654, 184, 2534, 4865, 2655, 2764, 2765, 196, 2535, 4866, 2656, 4875,
	4920, 2766, 2863, 2864, 2865, 208, 2536, 4867, 2657, 4876, 4921, 2767, 4884, 4929, 4965, 2866, 2951, 2952, 2953, 2954,
	220, 2537, 4868, 2658, 4877, 4922, 2768, 4885, 4930, 4966, 2867, 4892, 4937, 4973, 1602, 2955, 3028, 3029, 3030, 3031,
	3032, 232, 2527, 3094, 2648, 3094, 3095, 2758, 3094, 3095, 3096, 2857, 3094, 3095, 3096, 3097, 2945, 3094, 3095, 3096,
	3097, 3098, 3022, 244, 244, 244, 244, 244, 244, 88, 172, 250, 251, 184, 250, 2071, 251, 252, 252, 196,
	250, 2071, 251, 2072, 2082, 252, 253, 253, 253, 208, 250, 2071, 251, 2072, 2082, 252, 2073, 2083, 2092, 253,
	254, 254, 254, 254, 220, 250, 2071, 251, 2072, 2082, 252, 2073, 2083, 2092, 253, 2074, 2084, 2093, 2101, 254,
	255, 255, 255, 255, 255, 232, 250, 2071, 251, 2072, 2082, 252, 2073, 2083, 2092, 253, 2074, 2084, 2093, 2101,
	254, 2075, 2085, 2094, 2102, 2109, 255, 256, 256, 256, 256, 256, 256, 244, 94, 94, 95, 94, 95, 96,
	94, 95, 96, 97, 94, 95, 96, 97, 98, 94, 95, 96, 97, 98, 99, 94, 95, 96, 97, 98,
	99, 100, 10, 166, 178, 22, 11, 1609, 2467, 1675, 23, 167, 2478, 2599, 179, 190, 1741, 191, 34, 35,
	12, 1610, 2468, 1676, 24, 1620, 3325, 3545, 1686, 2479, 3765, 2600, 1742, 1752, 36, 168, 2489, 2610, 180, 2490,
	3985, 2611, 2720, 2721, 192, 202, 1807, 203, 1808, 1818, 204, 46, 47, 48, 13, 1611, 2469, 1677, 25, 1621,
	3326, 3546, 1687, 2480, 3766, 2601, 1743, 1753, 37, 1630, 3335, 3555, 1696, 3380, 1599, 3600, 3775, 3820, 1762, 2491,
	3986, 2612, 3995, 4040, 2722, 1809, 1819, 1828, 49, 169, 2500, 2621, 181, 2501, 4205, 2622, 2731, 2732, 193, 2502,
	4206, 2623, 4215, 4260, 2733, 2830, 2831, 2832, 205, 214, 1873, 215, 1874, 1884, 216, 1875, 1885, 1894, 217, 58,
	59, 60, 61, 14, 1612, 2470, 1678, 26, 1622, 3327, 3547, 1688, 2481, 3767, 2602, 1744, 1754, 38, 1631, 3336,
	3556, 1697, 3381, 6185, 3601, 3776, 3821, 1763, 2492, 3987, 2613, 3996, 4041, 2723, 1810, 1820, 1829, 50, 1639, 3344,
	3564, 1705, 3389, 6193, 3609, 3784, 3829, 1771, 3425, 6229, 3645, 6349, 1600, 3865, 4004, 4049, 4085, 1837, 2503, 4207,
	2624, 4216, 4261, 2734, 4224, 4269, 4305, 2833, 1876, 1886, 1895, 1903, 62, 170, 2511, 2632, 182, 2512, 4425, 2633,
	2742, 2743, 194, 2513, 4426, 2634, 4435, 4480, 2744, 2841, 2842, 2843, 206, 2514, 4427, 2635, 4436, 4481, 2745, 4444,
	4489, 4525, 2844, 2929, 2930, 2931, 2932, 218, 226, 1939, 227, 1940, 1950, 228, 1941, 1951, 1960, 229, 1942, 1952,
	1961, 1969, 230, 70, 71, 72, 73, 74, 15, 1613, 2471, 1679, 27, 1623, 3328, 3548, 1689, 2482, 3768, 2603,
	1745, 1755, 39, 1632, 3337, 3557, 1698, 3382, 6186, 3602, 3777, 3822, 1764, 2493, 3988, 2614, 3997, 4042, 2724, 1811,
	1821, 1830, 51, 1640, 3345, 3565, 1706, 3390, 6194, 3610, 3785, 3830, 1772, 3426, 6230, 3646, 6350, 6678, 3866, 4005,
	4050, 4086, 1838, 2504, 4208, 2625, 4217, 4262, 2735, 4225, 4270, 4306, 2834, 1877, 1887, 1896, 1904, 63, 1647, 3352,
	3572, 1713, 3397, 6201, 3617, 3792, 3837, 1779, 3433, 6237, 3653, 6357, 6685, 3873, 4012, 4057, 4093, 1845, 3461, 6265,
	3681, 6385, 6713, 3901, 6469, 6797, 1601, 4121, 4232, 4277, 4313, 4341, 1911, 2515, 4428, 2636, 4437, 4482, 2746, 4445,
	4490, 4526, 2845, 4452, 4497, 4533, 4561, 2933, 1943, 1953, 1962, 1970, 1977, 75, 171, 2522, 2643, 183, 2523, 4645,
	2644, 2753, 2754, 195, 2524, 4646, 2645, 4655, 4700, 2755, 2852, 2853, 2854, 207, 2525, 4647, 2646, 4656, 4701, 2756,
	4664, 4709, 4745, 2855, 2940, 2941, 2942, 2943, 219, 2526, 4648, 2647, 4657, 4702, 2757, 4665, 4710, 4746, 2856, 4672,
	4717, 4753, 4781, 2944, 3017, 3018, 3019, 3020, 3021, 231, 238, 2005, 239, 2006, 2016, 240, 2007, 2017, 2026, 241,
	2008, 2018, 2027, 2035, 242, 2009, 2019, 2028, 2036, 2043, 243, 82, 83, 84, 85, 86, 87, 16, 1614, 2472,
	1680, 28, 1624, 3329, 3549, 1690, 2483, 3769, 2604, 1746, 1756, 40, 1633, 3338, 3558, 1699, 3383, 6187, 3603, 3778,
	3823, 1765, 2494, 3989, 2615, 3998, 4043, 2725, 1812, 1822, 1831, 52, 1641, 3346, 3566, 1707, 3391, 6195, 3611, 3786,
	3831, 1773, 3427, 6231, 3647, 6351, 6679, 3867, 4006, 4051, 4087, 1839, 2505, 4209, 2626, 4218, 4263, 2736, 4226, 4271,
	4307, 2835, 1878, 1888, 1897, 1905, 64, 1648, 3353, 3573, 1714, 3398, 6202, 3618, 3793, 3838, 1780, 3434, 6238, 3654,
	6358, 6686, 3874, 4013, 4058, 4094, 1846, 3462, 6266, 3682, 6386, 6714, 3902, 6470, 6798, 7007, 4122, 4233, 4278, 4314,
	4342, 1912, 2516, 4429, 2637, 4438, 4483, 2747, 4446, 4491, 4527, 2846, 4453, 4498, 4534, 4562, 2934, 1944, 1954, 1963,
	1971, 1978, 76, 1654, 3359, 3579, 1720, 3404, 6208, 3624, 3799, 3844, 1786, 3440, 6244, 3660, 6364, 6692, 3880, 4019,
	4064, 4100, 1852, 3468, 6272, 3688, 6392, 6720, 3908, 6476, 6804, 7013, 4128, 4239, 4284, 4320, 4348, 1918, 3489, 6293,
	3709, 6413, 6741, 3929, 6497, 6825, 7034, 4149, 1603, 1603, 1603, 1602, 1603, 4459, 4504, 4540, 4568, 1603, 1984, 2527,
	4649, 2648, 4658, 4703, 2758, 4666, 4711, 4747, 2857, 4673, 4718, 4754, 4782, 2945, 4679, 4724, 4760, 4788, 1603, 3022,
	2010, 2020, 2029, 2037, 2044, 2050, 88, 172, 2533, 2654, 184, 2534, 4865, 2655, 2764, 2765, 196, 2535, 4866, 2656,
	4875, 4920, 2766, 2863, 2864, 2865, 208, 2536, 4867, 2657, 4876, 4921, 2767, 4884, 4929, 4965, 2866, 2951, 2952, 2953,
	2954, 220, 2537, 4868, 2658, 4877, 4922, 2768, 4885, 4930, 4966, 2867, 4892, 4937, 4973, 5001, 2955, 3028, 3029, 3030,
	3031, 3032, 232, 2538, 4869, 2659, 4878, 4923, 2769, 4886, 4931, 4967, 2868, 4893, 4938, 4974, 5002, 2956, 4899, 4944,
	4980, 5008, 1603, 3033, 3094, 3095, 3096, 3097, 3098, 3099, 244, 250, 2071, 251, 2072, 2082, 252, 2073, 2083, 2092,
	253, 2074, 2084, 2093, 2101, 254, 2075, 2085, 2094, 2102, 2109, 255, 2076, 2086, 2095, 2103, 2110, 2116, 256, 94,
	95, 96, 97, 98, 99, 100, 17, 173, 2473, 185, 29, 173, 2544, 2665, 185, 2484, 2775, 2605, 197, 197,
	41, 173, 2544, 2665, 185, 2545, 5085, 2666, 2775, 2776, 197, 2495, 2874, 2616, 2874, 2875, 2726, 209, 209, 209,
	53, 173, 2544, 2665, 185, 2545, 5085, 2666, 2775, 2776, 197, 2546, 5086, 2667, 5095, 5140, 2777, 2874, 2875, 2876,
	209, 2506, 2962, 2627, 2962, 2963, 2737, 2962, 2963, 2964, 2836, 221, 221, 221, 221, 65, 173, 2544, 2665, 185,
	2545, 5085, 2666, 2775, 2776, 197, 2546, 5086, 2667, 5095, 5140, 2777, 2874, 2875, 2876, 209, 2547, 5087, 2668, 5096,
	5141, 2778, 5104, 5149, 5185, 2877, 2962, 2963, 2964, 2965, 221, 2517, 3039, 2638, 3039, 3040, 2748, 3039, 3040, 3041,
	2847, 3039, 3040, 3041, 3042, 2935, 233, 233, 233, 233, 233, 77, 173, 2544, 2665, 185, 2545, 5085, 2666, 2775,
	2776, 197, 2546, 5086, 2667, 5095, 5140, 2777, 2874, 2875, 2876, 209, 2547, 5087, 2668, 5096, 5141, 2778, 5104, 5149,
	5185, 2877, 2962, 2963, 2964, 2965, 221, 2548, 5088, 2669, 5097, 5142, 2779, 5105, 5150, 5186, 2878, 5112, 5157, 5193,
	5221, 2966, 3039, 3040, 3041, 3042, 3043, 233, 2528, 3105, 2649, 3105, 3106, 2759, 3105, 3106, 3107, 2858, 3105, 3106,
	3107, 3108, 2946, 3105, 3106, 3107, 3108, 3109, 3023, 245, 245, 245, 245, 245, 245, 89, 173, 2544, 2665, 185,
	2545, 5085, 2666, 2775, 2776, 197, 2546, 5086, 2667, 5095, 5140, 2777, 2874, 2875, 2876, 209, 2547, 5087, 2668, 5096,
	5141, 2778, 5104, 5149, 5185, 2877, 2962, 2963, 2964, 2965, 221, 2548, 5088, 2669, 5097, 5142, 2779, 5105, 5150, 5186,
	2878, 5112, 5157, 5193, 5221, 2966, 3039, 3040, 3041, 3042, 3043, 233, 2549, 5089, 2670, 5098, 5143, 2780, 5106, 5151,
	5187, 2879, 5113, 5158, 5194, 5222, 2967, 5119, 5164, 5200, 5228, 1603, 3044, 3105, 3106, 3107, 3108, 3109, 3110, 245,
	2539, 3160, 2660, 3160, 3161, 2770, 3160, 3161, 3162, 2869, 3160, 3161, 3162, 3163, 2957, 3160, 3161, 3162, 3163, 3164,
	3034, 3160, 3161, 3162, 3163, 3164, 3165, 3100, 257, 257, 257, 257, 257, 257, 257, 101, 173, 262, 263, 185,
	262, 2137, 263, 264, 264, 197, 262, 2137, 263, 2138, 2148, 264, 265, 265, 265, 209, 262, 2137, 263, 2138,
	2148, 264, 2139, 2149, 2158, 265, 266, 266, 266, 266, 221, 262, 2137, 263, 2138, 2148, 264, 2139, 2149, 2158,
	265, 2140, 2150, 2159, 2167, 266, 267, 267, 267, 267, 267, 233, 262, 2137, 263, 2138, 2148, 264, 2139, 2149,
	2158, 265, 2140, 2150, 2159, 2167, 266, 2141, 2151, 2160, 2168, 2175, 267, 268, 268, 268, 268, 268, 268, 245,
	262, 2137, 263, 2138, 2148, 264, 2139, 2149, 2158, 265, 2140, 2150, 2159, 2167, 266, 2141, 2151, 2160, 2168, 2175,
	267, 2142, 2152, 2161, 2169, 2176, 2182, 268, 269, 269, 269, 269, 269, 269, 269, 257, 106, 106, 107, 106,
	107, 108, 106, 107, 108, 109, 106, 107, 108, 109, 110, 106, 107, 108, 109, 110, 111, 106, 107, 108,
	109, 110, 111, 112, 106, 107, 108, 109, 110, 111, 112, 113, 10, 166, 178, 22, 11, 1609, 2467, 1675,
	23, 167, 2478, 2599, 179, 190, 1741, 191, 34, 35, 12, 1610, 2468, 1676, 24, 1620, 3325, 3545, 1686, 2479,
	3765, 2600, 1742, 1752, 36, 168, 2489, 2610, 180, 2490, 3985, 2611, 2720, 2721, 192, 202, 1807, 203, 1808, 1818,
	204, 46, 47, 48, 13, 1611, 2469, 1677, 25, 1621, 3326, 3546, 1687, 2480, 3766, 2601, 1743, 1753, 37, 1630,
	3335, 3555, 1696, 3380, 1599, 3600, 3775, 3820, 1762, 2491, 3986, 2612, 3995, 4040, 2722, 1809, 1819, 1828, 49, 169,
	2500, 2621, 181, 2501, 4205, 2622, 2731, 2732, 193, 2502, 4206, 2623, 4215, 4260, 2733, 2830, 2831, 2832, 205, 214,
	1873, 215, 1874, 1884, 216, 1875, 1885, 1894, 217, 58, 59, 60, 61, 14, 1612, 2470, 1678, 26, 1622, 3327,
	3547, 1688, 2481, 3767, 2602, 1744, 1754, 38, 1631, 3336, 3556, 1697, 3381, 6185, 3601, 3776, 3821, 1763, 2492, 3987,
	2613, 3996, 4041, 2723, 1810, 1820, 1829, 50, 1639, 3344, 3564, 1705, 3389, 6193, 3609, 3784, 3829, 1771, 3425, 6229,
	3645, 6349, 1600, 3865, 4004, 4049, 4085, 1837, 2503, 4207, 2624, 4216, 4261, 2734, 4224, 4269, 4305, 2833, 1876, 1886,
	1895, 1903, 62, 170, 2511, 2632, 182, 2512, 4425, 2633, 2742, 2743, 194, 2513, 4426, 2634, 4435, 4480, 2744, 2841,
	2842, 2843, 206, 2514, 4427, 2635, 4436, 4481, 2745, 4444, 4489, 4525, 2844, 2929, 2930, 2931, 2932, 218, 226, 1939,
	227, 1940, 1950, 228, 1941, 1951, 1960, 229, 1942, 1952, 1961, 1969, 230, 70, 71, 72, 73, 74, 15, 1613,
	2471, 1679, 27, 1623, 3328, 3548, 1689, 2482, 3768, 2603, 1745, 1755, 39, 1632, 3337, 3557, 1698, 3382, 6186, 3602,
	3777, 3822, 1764, 2493, 3988, 2614, 3997, 4042, 2724, 1811, 1821, 1830, 51, 1640, 3345, 3565, 1706, 3390, 6194, 3610,
	3785, 3830, 1772, 3426, 6230, 3646, 6350, 6678, 3866, 4005, 4050, 4086, 1838, 2504, 4208, 2625, 4217, 4262, 2735, 4225,
	4270, 4306, 2834, 1877, 1887, 1896, 1904, 63, 1647, 3352, 3572, 1713, 3397, 6201, 3617, 3792, 3837, 1779, 3433, 6237,
	3653, 6357, 6685, 3873, 4012, 4057, 4093, 1845, 3461, 6265, 3681, 6385, 6713, 3901, 6469, 6797, 1601, 4121, 4232, 4277,
	4313, 4341, 1911, 2515, 4428, 2636, 4437, 4482, 2746, 4445, 4490, 4526, 2845, 4452, 4497, 4533, 4561, 2933, 1943, 1953,
	1962, 1970, 1977, 75, 171, 2522, 2643, 183, 2523, 4645, 2644, 2753, 2754, 195, 2524, 4646, 2645, 4655, 4700, 2755,
	2852, 2853, 2854, 207, 2525, 4647, 2646, 4656, 4701, 2756, 4664, 4709, 4745, 2855, 2940, 2941, 2942, 2943, 219, 2526,
	4648, 2647, 4657, 4702, 2757, 4665, 4710, 4746, 2856, 4672, 4717, 4753, 4781, 2944, 3017, 3018, 3019, 3020, 3021, 231,
	238, 2005, 239, 2006, 2016, 240, 2007, 2017, 2026, 241, 2008, 2018, 2027, 2035, 242, 2009, 2019, 2028, 2036, 2043,
	243, 82, 83, 84, 85, 86, 87, 16, 1614, 2472, 1680, 28, 1624, 3329, 3549, 1690, 2483, 3769, 2604, 1746,
	1756, 40, 1633, 3338, 3558, 1699, 3383, 6187, 3603, 3778, 3823, 1765, 2494, 3989, 2615, 3998, 4043, 2725, 1812, 1822,
	1831, 52, 1641, 3346, 3566, 1707, 3391, 6195, 3611, 3786, 3831, 1773, 3427, 6231, 3647, 6351, 6679, 3867, 4006, 4051,
	4087, 1839, 2505, 4209, 2626, 4218, 4263, 2736, 4226, 4271, 4307, 2835, 1878, 1888, 1897, 1905, 64, 1648, 3353, 3573,
	1714, 3398, 6202, 3618, 3793, 3838, 1780, 3434, 6238, 3654, 6358, 6686, 3874, 4013, 4058, 4094, 1846, 3462, 6266, 3682,
	6386, 6714, 3902, 6470, 6798, 7007, 4122, 4233, 4278, 4314, 4342, 1912, 2516, 4429, 2637, 4438, 4483, 2747, 4446, 4491,
	4527, 2846, 4453, 4498, 4534, 4562, 2934, 1944, 1954, 1963, 1971, 1978, 76, 1654, 3359, 3579, 1720, 3404, 6208, 3624,
	3799, 3844, 1786, 3440, 6244, 3660, 6364, 6692, 3880, 4019, 4064, 4100, 1852, 3468, 6272, 3688, 6392, 6720, 3908, 6476,
	6804, 7013, 4128, 4239, 4284, 4320, 4348, 1918, 3489, 6293, 3709, 6413, 6741, 3929, 6497, 6825, 7034, 4149, 6553, 6881,
	7090, 1602, 4369, 4459, 4504, 4540, 4568, 4589, 1984, 2527, 4649, 2648, 4658, 4703, 2758, 4666, 4711, 4747, 2857, 4673,
	4718, 4754, 4782, 2945, 4679, 4724, 4760, 4788, 4809, 3022, 2010, 2020, 2029, 2037, 2044, 2050, 88, 172, 2533, 2654,
	184, 2534, 4865, 2655, 2764, 2765, 196, 2535, 4866, 2656, 4875, 4920, 2766, 2863, 2864, 2865, 208, 2536, 4867, 2657,
	4876, 4921, 2767, 4884, 4929, 4965, 2866, 2951, 2952, 2953, 2954, 220, 2537, 4868, 2658, 4877, 4922, 2768, 4885, 4930,
	4966, 2867, 4892, 4937, 4973, 5001, 2955, 3028, 3029, 3030, 3031, 3032, 232, 2538, 4869, 2659, 4878, 4923, 2769, 4886,
	4931, 4967, 2868, 4893, 4938, 4974, 5002, 2956, 4899, 4944, 4980, 5008, 5029, 3033, 3094, 3095, 3096, 3097, 3098, 3099,
	244, 250, 2071, 251, 2072, 2082, 252, 2073, 2083, 2092, 253, 2074, 2084, 2093, 2101, 254, 2075, 2085, 2094, 2102,
	2109, 255, 2076, 2086, 2095, 2103, 2110, 2116, 256, 94, 95, 96, 97, 98, 99, 100, 17, 1615, 2473, 1681,
	29, 1625, 3330, 3550, 1691, 2484, 3770, 2605, 1747, 1757, 41, 1634, 3339, 3559, 1700, 3384, 6188, 3604, 3779, 3824,
	1766, 2495, 3990, 2616, 3999, 4044, 2726, 1813, 1823, 1832, 53, 1642, 3347, 3567, 1708, 3392, 6196, 3612, 3787, 3832,
	1774, 3428, 6232, 3648, 6352, 6680, 3868, 4007, 4052, 4088, 1840, 2506, 4210, 2627, 4219, 4264, 2737, 4227, 4272, 4308,
	2836, 1879, 1889, 1898, 1906, 65, 1649, 3354, 3574, 1715, 3399, 6203, 3619, 3794, 3839, 1781, 3435, 6239, 3655, 6359,
	6687, 3875, 4014, 4059, 4095, 1847, 3463, 6267, 3683, 6387, 6715, 3903, 6471, 6799, 7008, 4123, 4234, 4279, 4315, 4343,
	1913, 2517, 4430, 2638, 4439, 4484, 2748, 4447, 4492, 4528, 2847, 4454, 4499, 4535, 4563, 2935, 1945, 1955, 1964, 1972,
	1979, 77, 1655, 3360, 3580, 1721, 3405, 6209, 3625, 3800, 3845, 1787, 3441, 6245, 3661, 6365, 6693, 3881, 4020, 4065,
	4101, 1853, 3469, 6273, 3689, 6393, 6721, 3909, 6477, 6805, 7014, 4129, 4240, 4285, 4321, 4349, 1919, 3490, 6294, 3710,
	6414, 6742, 3930, 6498, 6826, 7035, 4150, 6554, 6882, 7091, 7216, 4370, 4460, 4505, 4541, 4569, 4590, 1985, 2528, 4650,
	2649, 4659, 4704, 2759, 4667, 4712, 4748, 2858, 4674, 4719, 4755, 4783, 2946, 4680, 4725, 4761, 4789, 4810, 3023, 2011,
	2021, 2030, 2038, 2045, 2051, 89, 1660, 3365, 3585, 1726, 3410, 6214, 3630, 3805, 3850, 1792, 3446, 6250, 3666, 6370,
	6698, 3886, 4025, 4070, 4106, 1858, 3474, 6278, 3694, 6398, 6726, 3914, 6482, 6810, 7019, 4134, 4245, 4290, 4326, 4354,
	1924, 3495, 6299, 3715, 6419, 6747, 3935, 6503, 6831, 7040, 4155, 6559, 6887, 7096, 7221, 4375, 4465, 4510, 4546, 4574,
	4595, 1990, 1605, 1605, 1605, 1605, 1605, 1605, 1605, 1605, 1605, 1605, 1605, 1605, 1605, 1605, 1605, 1604, 1604, 1604,
	1604, 1603, 1604, 1605, 1605, 1605, 1605, 1605, 1604, 1605, 2539, 4870, 2660, 4879, 4924, 2770, 4887, 4932, 4968, 2869,
	4894, 4939, 4975, 5003, 2957, 4900, 4945, 4981, 5009, 5030, 3034, 1605, 1605, 1605, 1605, 1605, 1604, 1605, 2077, 2087,
	2096, 2104, 2111, 2117, 1605, 101, 173, 2544, 2665, 185, 2545, 5085, 2666, 2775, 2776, 197, 2546, 5086, 2667, 5095,
	5140, 2777, 2874, 2875, 2876, 209, 2547, 5087, 2668, 5096, 5141, 2778, 5104, 5149, 5185, 2877, 2962, 2963, 2964, 2965,
	221, 2548, 5088, 2669, 5097, 5142, 2779, 5105, 5150, 5186, 2878, 5112, 5157, 5193, 5221, 2966, 3039, 3040, 3041, 3042,
	3043, 233, 2549, 5089, 2670, 5098, 5143, 2780, 5106, 5151, 5187, 2879, 5113, 5158, 5194, 5222, 2967, 5119, 5164, 5200,
	5228, 5249, 3044, 3105, 3106, 3107, 3108, 3109, 3110, 245, 2550, 5090, 2671, 5099, 5144, 2781, 5107, 5152, 5188, 2880,
	5114, 5159, 5195, 5223, 2968, 5120, 5165, 5201, 5229, 5250, 3045, 1605, 1605, 1605, 1605, 1605, 1604, 1605, 3160, 3161,
	3162, 3163, 3164, 3165, 1605, 257, 262, 2137, 263, 2138, 2148, 264, 2139, 2149, 2158, 265, 2140, 2150, 2159, 2167,
	266, 2141, 2151, 2160, 2168, 2175, 267, 2142, 2152, 2161, 2169, 2176, 2182, 268, 2143, 2153, 2162, 2170, 2177, 2183,
	1605, 269, 106, 107, 108, 109, 110, 111, 112, 113, 18, 174, 2474, 186, 30, 174, 2555, 2676, 186, 2485,
	2786, 2606, 198, 198, 42, 174, 2555, 2676, 186, 2556, 5305, 2677, 2786, 2787, 198, 2496, 2885, 2617, 2885, 2886,
	2727, 210, 210, 210, 54, 174, 2555, 2676, 186, 2556, 5305, 2677, 2786, 2787, 198, 2557, 5306, 2678, 5315, 5360,
	2788, 2885, 2886, 2887, 210, 2507, 2973, 2628, 2973, 2974, 2738, 2973, 2974, 2975, 2837, 222, 222, 222, 222, 66,
	174, 2555, 2676, 186, 2556, 5305, 2677, 2786, 2787, 198, 2557, 5306, 2678, 5315, 5360, 2788, 2885, 2886, 2887, 210,
	2558, 5307, 2679, 5316, 5361, 2789, 5324, 5369, 5405, 2888, 2973, 2974, 2975, 2976, 222, 2518, 3050, 2639, 3050, 3051,
	2749, 3050, 3051, 3052, 2848, 3050, 3051, 3052, 3053, 2936, 234, 234, 234, 234, 234, 78, 174, 2555, 2676, 186,
	2556, 5305, 2677, 2786, 2787, 198, 2557, 5306, 2678, 5315, 5360, 2788, 2885, 2886, 2887, 210, 2558, 5307, 2679, 5316,
	5361, 2789, 5324, 5369, 5405, 2888, 2973, 2974, 2975, 2976, 222, 2559, 5308, 2680, 5317, 5362, 2790, 5325, 5370, 5406,
	2889, 5332, 5377, 5413, 5441, 2977, 3050, 3051, 3052, 3053, 3054, 234, 2529, 3116, 2650, 3116, 3117, 2760, 3116, 3117,
	3118, 2859, 3116, 3117, 3118, 3119, 2947, 3116, 3117, 3118, 3119, 3120, 3024, 246, 246, 246, 246, 246, 246, 90,
	174, 2555, 2676, 186, 2556, 5305, 2677, 2786, 2787, 198, 2557, 5306, 2678, 5315, 5360, 2788, 2885, 2886, 2887, 210,
	2558, 5307, 2679, 5316, 5361, 2789, 5324, 5369, 5405, 2888, 2973, 2974, 2975, 2976, 222, 2559, 5308, 2680, 5317, 5362,
	2790, 5325, 5370, 5406, 2889, 5332, 5377, 5413, 5441, 2977, 3050, 3051, 3052, 3053, 3054, 234, 2560, 5309, 2681, 5318,
	5363, 2791, 5326, 5371, 5407, 2890, 5333, 5378, 5414, 5442, 2978, 5339, 5384, 5420, 5448, 5469, 3055, 3116, 3117, 3118,
	3119, 3120, 3121, 246, 2540, 3171, 2661, 3171, 3172, 2771, 3171, 3172, 3173, 2870, 3171, 3172, 3173, 3174, 2958, 3171,
	3172, 3173, 3174, 3175, 3035, 3171, 3172, 3173, 3174, 3175, 3176, 3101, 258, 258, 258, 258, 258, 258, 258, 102,
	174, 2555, 2676, 186, 2556, 5305, 2677, 2786, 2787, 198, 2557, 5306, 2678, 5315, 5360, 2788, 2885, 2886, 2887, 210,
	2558, 5307, 2679, 5316, 5361, 2789, 5324, 5369, 5405, 2888, 2973, 2974, 2975, 2976, 222, 2559, 5308, 2680, 5317, 5362,
	2790, 5325, 5370, 5406, 2889, 5332, 5377, 5413, 5441, 2977, 3050, 3051, 3052, 3053, 3054, 234, 2560, 5309, 2681, 5318,
	5363, 2791, 5326, 5371, 5407, 2890, 5333, 5378, 5414, 5442, 2978, 5339, 5384, 5420, 5448, 5469, 3055, 3116, 3117, 3118,
	3119, 3120, 3121, 246, 2561, 5310, 2682, 5319, 5364, 2792, 5327, 5372, 5408, 2891, 5334, 5379, 5415, 5443, 2979, 5340,
	5385, 5421, 5449, 5470, 3056, 1605, 1605, 1605, 1605, 1605, 1604, 1605, 3171, 3172, 3173, 3174, 3175, 3176, 1605, 258,
	2551, 3215, 2672, 3215, 3216, 2782, 3215, 3216, 3217, 2881, 3215, 3216, 3217, 3218, 2969, 3215, 3216, 3217, 3218, 3219,
	3046, 3215, 3216, 3217, 3218, 3219, 3220, 3112, 3215, 3216, 3217, 3218, 3219, 3220, 1605, 3167, 270, 270, 270, 270,
	270, 270, 270, 270, 114, 174, 274, 275, 186, 274, 2203, 275, 276, 276, 198, 274, 2203, 275, 2204, 2214,
	276, 277, 277, 277, 210, 274, 2203, 275, 2204, 2214, 276, 2205, 2215, 2224, 277, 278, 278, 278, 278, 222,
	274, 2203, 275, 2204, 2214, 276, 2205, 2215, 2224, 277, 2206, 2216, 2225, 2233, 278, 279, 279, 279, 279, 279,
	234, 274, 2203, 275, 2204, 2214, 276, 2205, 2215, 2224, 277, 2206, 2216, 2225, 2233, 278, 2207, 2217, 2226, 2234,
	2241, 279, 280, 280, 280, 280, 280, 280, 246, 274, 2203, 275, 2204, 2214, 276, 2205, 2215, 2224, 277, 2206,
	2216, 2225, 2233, 278, 2207, 2217, 2226, 2234, 2241, 279, 2208, 2218, 2227, 2235, 2242, 2248, 280, 281, 281, 281,
	281, 281, 281, 281, 258, 274, 2203, 275, 2204, 2214, 276, 2205, 2215, 2224, 277, 2206, 2216, 2225, 2233, 278,
	2207, 2217, 2226, 2234, 2241, 279, 2208, 2218, 2227, 2235, 2242, 2248, 280, 2209, 2219, 2228, 2236, 2243, 2249, 1605,
	281, 282, 282, 282, 282, 282, 282, 282, 282, 270, 118, 118, 119, 118, 119, 120, 118, 119, 120, 121,
	118, 119, 120, 121, 122, 118, 119, 120, 121, 122, 123, 118, 119, 120, 121, 122, 123, 124, 118, 119,
	120, 121, 122, 123, 124, 125, 118, 119, 120, 121, 122, 123, 124, 125, 126, 10, 166, 178, 22, 11,
	175, 2467, 187, 23, 167, 2478, 2599, 179, 190, 199, 191, 34, 35, 12, 175, 2468, 187, 24, 175, 2566,
	2687, 187, 2479, 2797, 2600, 199, 199, 36, 168, 2489, 2610, 180, 2490, 2896, 2611, 2720, 2721, 192, 202, 211,
	203, 211, 211, 204, 46, 47, 48, 13, 175, 2469, 187, 25, 175, 2566, 2687, 187, 2480, 2797, 2601, 199,
	199, 37, 175, 2566, 2687, 187, 2567, 1599, 2688, 2797, 2798, 199, 2491, 2896, 2612, 2896, 2897, 2722, 211, 211,
	211, 49, 169, 2500, 2621, 181, 2501, 2984, 2622, 2731, 2732, 193, 2502, 2984, 2623, 2984, 2985, 2733, 2830, 2831,
	2832, 205, 214, 223, 215, 223, 223, 216, 223, 223, 223, 217, 58, 59, 60, 61, 14, 175, 2470, 187,
	26, 175, 2566, 2687, 187, 2481, 2797, 2602, 199, 199, 38, 175, 2566, 2687, 187, 2567, 5525, 2688, 2797, 2798,
	199, 2492, 2896, 2613, 2896, 2897, 2723, 211, 211, 211, 50, 175, 2566, 2687, 187, 2567, 5525, 2688, 2797, 2798,
	199, 2568, 5526, 2689, 5535, 1600, 2799, 2896, 2897, 2898, 211, 2503, 2984, 2624, 2984, 2985, 2734, 2984, 2985, 2986,
	2833, 223, 223, 223, 223, 62, 170, 2511, 2632, 182, 2512, 3061, 2633, 2742, 2743, 194, 2513, 3061, 2634, 3061,
	3062, 2744, 2841, 2842, 2843, 206, 2514, 3061, 2635, 3061, 3062, 2745, 3061, 3062, 3063, 2844, 2929, 2930, 2931, 2932,
	218, 226, 235, 227, 235, 235, 228, 235, 235, 235, 229, 235, 235, 235, 235, 230, 70, 71, 72, 73,
	74, 15, 175, 2471, 187, 27, 175, 2566, 2687, 187, 2482, 2797, 2603, 199, 199, 39, 175, 2566, 2687, 187,
	2567, 5525, 2688, 2797, 2798, 199, 2493, 2896, 2614, 2896, 2897, 2724, 211, 211, 211, 51, 175, 2566, 2687, 187,
	2567, 5525, 2688, 2797, 2798, 199, 2568, 5526, 2689, 5535, 5580, 2799, 2896, 2897, 2898, 211, 2504, 2984, 2625, 2984,
	2985, 2735, 2984, 2985, 2986, 2834, 223, 223, 223, 223, 63, 175, 2566, 2687, 187, 2567, 5525, 2688, 2797, 2798,
	199, 2568, 5526, 2689, 5535, 5580, 2799, 2896, 2897, 2898, 211, 2569, 5527, 2690, 5536, 5581, 2800, 5544, 5589, 1601,
	2899, 2984, 2985, 2986, 2987, 223, 2515, 3061, 2636, 3061, 3062, 2746, 3061, 3062, 3063, 2845, 3061, 3062, 3063, 3064,
	2933, 235, 235, 235, 235, 235, 75, 171, 2522, 2643, 183, 2523, 3127, 2644, 2753, 2754, 195, 2524, 3127, 2645,
	3127, 3128, 2755, 2852, 2853, 2854, 207, 2525, 3127, 2646, 3127, 3128, 2756, 3127, 3128, 3129, 2855, 2940, 2941, 2942,
	2943, 219, 2526, 3127, 2647, 3127, 3128, 2757, 3127, 3128, 3129, 2856, 3127, 3128, 3129, 3130, 2944, 3017, 3018, 3019,
	3020, 3021, 231, 238, 247, 239, 247, 247, 240, 247, 247, 247, 241, 247, 247, 247, 247, 242, 247, 247,
	247, 247, 247, 243, 82, 83, 84, 85, 86, 87, 16, 175, 2472, 187, 28, 175, 2566, 2687, 187, 2483,
	2797, 2604, 199, 199, 40, 175, 2566, 2687, 187, 2567, 5525, 2688, 2797, 2798, 199, 2494, 2896, 2615, 2896, 2897,
	2725, 211, 211, 211, 52, 175, 2566, 2687, 187, 2567, 5525, 2688, 2797, 2798, 199, 2568, 5526, 2689, 5535, 5580,
	2799, 2896, 2897, 2898, 211, 2505, 2984, 2626, 2984, 2985, 2736, 2984, 2985, 2986, 2835, 223, 223, 223, 223, 64,
	175, 2566, 2687, 187, 2567, 5525, 2688, 2797, 2798, 199, 2568, 5526, 2689, 5535, 5580, 2799, 2896, 2897, 2898, 211,
	2569, 5527, 2690, 5536, 5581, 2800, 5544, 5589, 5625, 2899, 2984, 2985, 2986, 2987, 223, 2516, 3061, 2637, 3061, 3062,
	2747, 3061, 3062, 3063, 2846, 3061, 3062, 3063, 3064, 2934, 235, 235, 235, 235, 235, 76, 175, 2566, 2687, 187,
	2567, 5525, 2688, 2797, 2798, 199, 2568, 5526, 2689, 5535, 5580, 2799, 2896, 2897, 2898, 211, 2569, 5527, 2690, 5536,
	5581, 2800, 5544, 5589, 5625, 2899, 2984, 2985, 2986, 2987, 223, 2570, 5528, 2691, 5537, 5582, 2801, 5545, 5590, 5626,
	2900, 5552, 5597, 5633, 1602, 2988, 3061, 3062, 3063, 3064, 3065, 235, 2527, 3127, 2648, 3127, 3128, 2758, 3127, 3128,
	3129, 2857, 3127, 3128, 3129, 3130, 2945, 3127, 3128, 3129, 3130, 3131, 3022, 247, 247, 247, 247, 247, 247, 88,
	172, 2533, 2654, 184, 2534, 3182, 2655, 2764, 2765, 196, 2535, 3182, 2656, 3182, 3183, 2766, 2863, 2864, 2865, 208,
	2536, 3182, 2657, 3182, 3183, 2767, 3182, 3183, 3184, 2866, 2951, 2952, 2953, 2954, 220, 2537, 3182, 2658, 3182, 3183,
	2768, 3182, 3183, 3184, 2867, 3182, 3183, 3184, 3185, 2955, 3028, 3029, 3030, 3031, 3032, 232, 2538, 3182, 2659, 3182,
	3183, 2769, 3182, 3183, 3184, 2868, 3182, 3183, 3184, 3185, 2956, 3182, 3183, 3184, 3185, 3186, 3033, 3094, 3095, 3096,
	3097, 3098, 3099, 244, 250, 259, 251, 259, 259, 252, 259, 259, 259, 253, 259, 259, 259, 259, 254, 259,
	259, 259, 259, 259, 255, 259, 259, 259, 259, 259, 259, 256, 94, 95, 96, 97, 98, 99, 100, 17,
	175, 2473, 187, 29, 175, 2566, 2687, 187, 2484, 2797, 2605, 199, 199, 41, 175, 2566, 2687, 187, 2567, 5525,
	2688, 2797, 2798, 199, 2495, 2896, 2616, 2896, 2897, 2726, 211, 211, 211, 53, 175, 2566, 2687, 187, 2567, 5525,
	2688, 2797, 2798, 199, 2568, 5526, 2689, 5535, 5580, 2799, 2896, 2897, 2898, 211, 2506, 2984, 2627, 2984, 2985, 2737,
	2984, 2985, 2986, 2836, 223, 223, 223, 223, 65, 175, 2566, 2687, 187, 2567, 5525, 2688, 2797, 2798, 199, 2568,
	5526, 2689, 5535, 5580, 2799, 2896, 2897, 2898, 211, 2569, 5527, 2690, 5536, 5581, 2800, 5544, 5589, 5625, 2899, 2984,
	2985, 2986, 2987, 223, 2517, 3061, 2638, 3061, 3062, 2748, 3061, 3062, 3063, 2847, 3061, 3062, 3063, 3064, 2935, 235,
	235, 235, 235, 235, 77, 175, 2566, 2687, 187, 2567, 5525, 2688, 2797, 2798, 199, 2568, 5526, 2689, 5535, 5580,
	2799, 2896, 2897, 2898, 211, 2569, 5527, 2690, 5536, 5581, 2800, 5544, 5589, 5625, 2899, 2984, 2985, 2986, 2987, 223,
	2570, 5528, 2691, 5537, 5582, 2801, 5545, 5590, 5626, 2900, 5552, 5597, 5633, 5661, 2988, 3061, 3062, 3063, 3064, 3065,
	235, 2528, 3127, 2649, 3127, 3128, 2759, 3127, 3128, 3129, 2858, 3127, 3128, 3129, 3130, 2946, 3127, 3128, 3129, 3130,
	3131, 3023, 247, 247, 247, 247, 247, 247, 89, 175, 2566, 2687, 187, 2567, 5525, 2688, 2797, 2798, 199, 2568,
	5526, 2689, 5535, 5580, 2799, 2896, 2897, 2898, 211, 2569, 5527, 2690, 5536, 5581, 2800, 5544, 5589, 5625, 2899, 2984,
	2985, 2986, 2987, 223, 2570, 5528, 2691, 5537, 5582, 2801, 5545, 5590, 5626, 2900, 5552, 5597, 5633, 5661, 2988, 3061,
	3062, 3063, 3064, 3065, 235, 2571, 5529, 2692, 5538, 5583, 2802, 5546, 5591, 5627, 2901, 5553, 5598, 5634, 5662, 2989,
	5559, 5604, 5640, 5668, 1603, 3066, 3127, 3128, 3129, 3130, 3131, 3132, 247, 2539, 3182, 2660, 3182, 3183, 2770, 3182,
	3183, 3184, 2869, 3182, 3183, 3184, 3185, 2957, 3182, 3183, 3184, 3185, 3186, 3034, 3182, 3183, 3184, 3185, 3186, 3187,
	3100, 259, 259, 259, 259, 259, 259, 259, 101, 173, 2544, 2665, 185, 2545, 3226, 2666, 2775, 2776, 197, 2546,
	3226, 2667, 3226, 3227, 2777, 2874, 2875, 2876, 209, 2547, 3226, 2668, 3226, 3227, 2778, 3226, 3227, 3228, 2877, 2962,
	2963, 2964, 2965, 221, 2548, 3226, 2669, 3226, 3227, 2779, 3226, 3227, 3228, 2878, 3226, 3227, 3228, 3229, 2966, 3039,
	3040, 3041, 3042, 3043, 233, 2549, 3226, 2670, 3226, 3227, 2780, 3226, 3227, 3228, 2879, 3226, 3227, 3228, 3229, 2967,
	3226, 3227, 3228, 3229, 3230, 3044, 3105, 3106, 3107, 3108, 3109, 3110, 245, 2550, 3226, 2671, 3226, 3227, 2781, 3226,
	3227, 3228, 2880, 3226, 3227, 3228, 3229, 2968, 3226, 3227, 3228, 3229, 3230, 3045, 3226, 3227, 3228, 3229, 3230, 3231,
	3111, 3160, 3161, 3162, 3163, 3164, 3165, 3166, 257, 262, 271, 263, 271, 271, 264, 271, 271, 271, 265, 271,
	271, 271, 271, 266, 271, 271, 271, 271, 271, 267, 271, 271, 271, 271, 271, 271, 268, 271, 271, 271,
	271, 271, 271, 271, 269, 106, 107, 108, 109, 110, 111, 112, 113, 18, 175, 2474, 187, 30, 175, 2566,
	2687, 187, 2485, 2797, 2606, 199, 199, 42, 175, 2566, 2687, 187, 2567, 5525, 2688, 2797, 2798, 199, 2496, 2896,
	2617, 2896, 2897, 2727, 211, 211, 211, 54, 175, 2566, 2687, 187, 2567, 5525, 2688, 2797, 2798, 199, 2568, 5526,
	2689, 5535, 5580, 2799, 2896, 2897, 2898, 211, 2507, 2984, 2628, 2984, 2985, 2738, 2984, 2985, 2986, 2837, 223, 223,
	223, 223, 66, 175, 2566, 2687, 187, 2567, 5525, 2688, 2797, 2798, 199, 2568, 5526, 2689, 5535, 5580, 2799, 2896,
	2897, 2898, 211, 2569, 5527, 2690, 5536, 5581, 2800, 5544, 5589, 5625, 2899, 2984, 2985, 2986, 2987, 223, 2518, 3061,
	2639, 3061, 3062, 2749, 3061, 3062, 3063, 2848, 3061, 3062, 3063, 3064, 2936, 235, 235, 235, 235, 235, 78, 175,
	2566, 2687, 187, 2567, 5525, 2688, 2797, 2798, 199, 2568, 5526, 2689, 5535, 5580, 2799, 2896, 2897, 2898, 211, 2569,
	5527, 2690, 5536, 5581, 2800, 5544, 5589, 5625, 2899, 2984, 2985, 2986, 2987, 223, 2570, 5528, 2691, 5537, 5582, 2801,
	5545, 5590, 5626, 2900, 5552, 5597, 5633, 5661, 2988, 3061, 3062, 3063, 3064, 3065, 235, 2529, 3127, 2650, 3127, 3128,
	2760, 3127, 3128, 3129, 2859, 3127, 3128, 3129, 3130, 2947, 3127, 3128, 3129, 3130, 3131, 3024, 247, 247, 247, 247,
	247, 247, 90, 175, 2566, 2687, 187, 2567, 5525, 2688, 2797, 2798, 199, 2568, 5526, 2689, 5535, 5580, 2799, 2896,
	2897, 2898, 211, 2569, 5527, 2690, 5536, 5581, 2800, 5544, 5589, 5625, 2899, 2984, 2985, 2986, 2987, 223, 2570, 5528,
	2691, 5537, 5582, 2801, 5545, 5590, 5626, 2900, 5552, 5597, 5633, 5661, 2988, 3061, 3062, 3063, 3064, 3065, 235, 2571,
	5529, 2692, 5538, 5583, 2802, 5546, 5591, 5627, 2901, 5553, 5598, 5634, 5662, 2989, 5559, 5604, 5640, 5668, 5689, 3066,
	3127, 3128, 3129, 3130, 3131, 3132, 247, 2540, 3182, 2661, 3182, 3183, 2771, 3182, 3183, 3184, 2870, 3182, 3183, 3184,
	3185, 2958, 3182, 3183, 3184, 3185, 3186, 3035, 3182, 3183, 3184, 3185, 3186, 3187, 3101, 259, 259, 259, 259, 259,
	259, 259, 102, 175, 2566, 2687, 187, 2567, 5525, 2688, 2797, 2798, 199, 2568, 5526, 2689, 5535, 5580, 2799, 2896,
	2897, 2898, 211, 2569, 5527, 2690, 5536, 5581, 2800, 5544, 5589, 5625, 2899, 2984, 2985, 2986, 2987, 223, 2570, 5528,
	2691, 5537, 5582, 2801, 5545, 5590, 5626, 2900, 5552, 5597, 5633, 5661, 2988, 3061, 3062, 3063, 3064, 3065, 235, 2571,
	5529, 2692, 5538, 5583, 2802, 5546, 5591, 5627, 2901, 5553, 5598, 5634, 5662, 2989, 5559, 5604, 5640, 5668, 5689, 3066,
	3127, 3128, 3129, 3130, 3131, 3132, 247, 2572, 5530, 2693, 5539, 5584, 2803, 5547, 5592, 5628, 2902, 5554, 5599, 5635,
	5663, 2990, 5560, 5605, 5641, 5669, 5690, 3067, 1605, 1605, 1605, 1605, 1605, 1604, 1605, 3182, 3183, 3184, 3185, 3186,
	3187, 1605, 259, 2551, 3226, 2672, 3226, 3227, 2782, 3226, 3227, 3228, 2881, 3226, 3227, 3228, 3229, 2969, 3226, 3227,
	3228, 3229, 3230, 3046, 3226, 3227, 3228, 3229, 3230, 3231, 3112, 3226, 3227, 3228, 3229, 3230, 3231, 1605, 3167, 271,
	271, 271, 271, 271, 271, 271, 271, 114, 174, 2555, 2676, 186, 2556, 3259, 2677, 2786, 2787, 198, 2557, 3259,
	2678, 3259, 3260, 2788, 2885, 2886, 2887, 210, 2558, 3259, 2679, 3259, 3260, 2789, 3259, 3260, 3261, 2888, 2973, 2974,
	2975, 2976, 222, 2559, 3259, 2680, 3259, 3260, 2790, 3259, 3260, 3261, 2889, 3259, 3260, 3261, 3262, 2977, 3050, 3051,
	3052, 3053, 3054, 234, 2560, 3259, 2681, 3259, 3260, 2791, 3259, 3260, 3261, 2890, 3259, 3260, 3261, 3262, 2978, 3259,
	3260, 3261, 3262, 3263, 3055, 3116, 3117, 3118, 3119, 3120, 3121, 246, 2561, 3259, 2682, 3259, 3260, 2792, 3259, 3260,
	3261, 2891, 3259, 3260, 3261, 3262, 2979, 3259, 3260, 3261, 3262, 3263, 3056, 3259, 3260, 3261, 3262, 3263, 3264, 3122,
	3171, 3172, 3173, 3174, 3175, 3176, 3177, 258, 2562, 3259, 2683, 3259, 3260, 2793, 3259, 3260, 3261, 2892, 3259, 3260,
	3261, 3262, 2980, 3259, 3260, 3261, 3262, 3263, 3057, 3259, 3260, 3261, 3262, 3263, 3264, 3123, 3259, 3260, 3261, 3262,
	3263, 3264, 1605, 3178, 3215, 3216, 3217, 3218, 3219, 3220, 3221, 3222, 270, 274, 283, 275, 283, 283, 276, 283,
	283, 283, 277, 283, 283, 283, 283, 278, 283, 283, 283, 283, 283, 279, 283, 283, 283, 283, 283, 283,
	280, 283, 283, 283, 283, 283, 283, 283, 281, 283, 283, 283, 283, 283, 283, 283, 283, 282, 118, 119,
	120, 121, 122, 123, 124, 125, 126, 19, 175, 286, 187, 31, 175, 286, 287, 187, 286, 288, 287, 199,
	199, 43, 175, 286, 287, 187, 286, 2269, 287, 288, 288, 199, 286, 289, 287, 289, 289, 288, 211, 211,
	211, 55, 175, 286, 287, 187, 286, 2269, 287, 288, 288, 199, 286, 2269, 287, 2270, 2280, 288, 289, 289,
	289, 211, 286, 290, 287, 290, 290, 288, 290, 290, 290, 289, 223, 223, 223, 223, 67, 175, 286, 287,
	187, 286, 2269, 287, 288, 288, 199, 286, 2269, 287, 2270, 2280, 288, 289, 289, 289, 211, 286, 2269, 287,
	2270, 2280, 288, 2271, 2281, 2290, 289, 290, 290, 290, 290, 223, 286, 291, 287, 291, 291, 288, 291, 291,
	291, 289, 291, 291, 291, 291, 290, 235, 235, 235, 235, 235, 79, 175, 286, 287, 187, 286, 2269, 287,
	288, 288, 199, 286, 2269, 287, 2270, 2280, 288, 289, 289, 289, 211, 286, 2269, 287, 2270, 2280, 288, 2271,
	2281, 2290, 289, 290, 290, 290, 290, 223, 286, 2269, 287, 2270, 2280, 288, 2271, 2281, 2290, 289, 2272, 2282,
	2291, 2299, 290, 291, 291, 291, 291, 291, 235, 286, 292, 287, 292, 292, 288, 292, 292, 292, 289, 292,
	292, 292, 292, 290, 292, 292, 292, 292, 292, 291, 247, 247, 247, 247, 247, 247, 91, 175, 286, 287,
	187, 286, 2269, 287, 288, 288, 199, 286, 2269, 287, 2270, 2280, 288, 289, 289, 289, 211, 286, 2269, 287,
	2270, 2280, 288, 2271, 2281, 2290, 289, 290, 290, 290, 290, 223, 286, 2269, 287, 2270, 2280, 288, 2271, 2281,
	2290, 289, 2272, 2282, 2291, 2299, 290, 291, 291, 291, 291, 291, 235, 286, 2269, 287, 2270, 2280, 288, 2271,
	2281, 2290, 289, 2272, 2282, 2291, 2299, 290, 2273, 2283, 2292, 2300, 2307, 291, 292, 292, 292, 292, 292, 292,
	247, 286, 293, 287, 293, 293, 288, 293, 293, 293, 289, 293, 293, 293, 293, 290, 293, 293, 293, 293,
	293, 291, 293, 293, 293, 293, 293, 293, 292, 259, 259, 259, 259, 259, 259, 259, 103, 175, 286, 287,
	187, 286, 2269, 287, 288, 288, 199, 286, 2269, 287, 2270, 2280, 288, 289, 289, 289, 211, 286, 2269, 287,
	2270, 2280, 288, 2271, 2281, 2290, 289, 290, 290, 290, 290, 223, 286, 2269, 287, 2270, 2280, 288, 2271, 2281,
	2290, 289, 2272, 2282, 2291, 2299, 290, 291, 291, 291, 291, 291, 235, 286, 2269, 287, 2270, 2280, 288, 2271,
	2281, 2290, 289, 2272, 2282, 2291, 2299, 290, 2273, 2283, 2292, 2300, 2307, 291, 292, 292, 292, 292, 292, 292,
	247, 286, 2269, 287, 2270, 2280, 288, 2271, 2281, 2290, 289, 2272, 2282, 2291, 2299, 290, 2273, 2283, 2292, 2300,
	2307, 291, 2274, 2284, 2293, 2301, 2308, 2314, 292, 293, 293, 293, 293, 293, 293, 293, 259, 286, 294, 287,
	294, 294, 288, 294, 294, 294, 289, 294, 294, 294, 294, 290, 294, 294, 294, 294, 294, 291, 294, 294,
	294, 294, 294, 294, 292, 294, 294, 294, 294, 294, 294, 294, 293, 271, 271, 271, 271, 271, 271, 271,
	271, 115, 175, 286, 287, 187, 286, 2269, 287, 288, 288, 199, 286, 2269, 287, 2270, 2280, 288, 289, 289,
	289, 211, 286, 2269, 287, 2270, 2280, 288, 2271, 2281, 2290, 289, 290, 290, 290, 290, 223, 286, 2269, 287,
	2270, 2280, 288, 2271, 2281, 2290, 289, 2272, 2282, 2291, 2299, 290, 291, 291, 291, 291, 291, 235, 286, 2269,
	287, 2270, 2280, 288, 2271, 2281, 2290, 289, 2272, 2282, 2291, 2299, 290, 2273, 2283, 2292, 2300, 2307, 291, 292,
	292, 292, 292, 292, 292, 247, 286, 2269, 287, 2270, 2280, 288, 2271, 2281, 2290, 289, 2272, 2282, 2291, 2299,
	290, 2273, 2283, 2292, 2300, 2307, 291, 2274, 2284, 2293, 2301, 2308, 2314, 292, 293, 293, 293, 293, 293, 293,
	293, 259, 286, 2269, 287, 2270, 2280, 288, 2271, 2281, 2290, 289, 2272, 2282, 2291, 2299, 290, 2273, 2283, 2292,
	2300, 2307, 291, 2274, 2284, 2293, 2301, 2308, 2314, 292, 2275, 2285, 2294, 2302, 2309, 2315, 1605, 293, 294, 294,
	294, 294, 294, 294, 294, 294, 271, 286, 295, 287, 295, 295, 288, 295, 295, 295, 289, 295, 295, 295,
	295, 290, 295, 295, 295, 295, 295, 291, 295, 295, 295, 295, 295, 295, 292, 295, 295, 295, 295, 295,
	295, 295, 293, 295, 295, 295, 295, 295, 295, 295, 295, 294, 283, 283, 283, 283, 283, 283, 283, 283,
	283, 127, 130, 130, 130, 131, 130, 130, 131, 130, 131, 132, 130, 130, 131, 130, 131, 132, 130, 131,
	132, 133, 130, 130, 131, 130, 131, 132, 130, 131, 132, 133, 130, 131, 132, 133, 134, 130, 130, 131,
	130, 131, 132, 130, 131, 132, 133, 130, 131, 132, 133, 134, 130, 131, 132, 133, 134, 135, 130, 130,
	131, 130, 131, 132, 130, 131, 132, 133, 130, 131, 132, 133, 134, 130, 131, 132, 133, 134, 135, 130,
	131, 132, 133, 134, 135, 136, 130, 130, 131, 130, 131, 132, 130, 131, 132, 133, 130, 131, 132, 133,
	134, 130, 131, 132, 133, 134, 135, 130, 131, 132, 133, 134, 135, 136, 130, 131, 132, 133, 134, 135,
	136, 137, 130, 130, 131, 130, 131, 132, 130, 131, 132, 133, 130, 131, 132, 133, 134, 130, 131, 132,
	133, 134, 135, 130, 131, 132, 133, 134, 135, 136, 130, 131, 132, 133, 134, 135, 136, 137, 130, 131,
	132, 133, 134, 135, 136, 137, 138, 130, 130, 131, 130, 131, 132, 130, 131, 132, 133, 130, 131, 132,
	133, 134, 130, 131, 132, 133, 134, 135, 130, 131, 132, 133, 134, 135, 136, 130, 131, 132, 133, 134,
	135, 136, 137, 130, 131, 132, 133, 134, 135, 136, 137, 138, 130, 131, 132, 133, 134, 135, 136, 137,
	138, 139, 10, 166, 22, 10, 166, 178, 22, 11, 167, 2467, 179, 23, 167, 190, 191, 179, 34, 34,
	35, 10, 166, 178, 22, 11, 1609, 2467, 1675, 23, 167, 2478, 2599, 179, 190, 1741, 191, 34, 35, 12,
	168, 2468, 180, 24, 168, 2489, 2610, 180, 2479, 2720, 2600, 192, 192, 36, 168, 202, 203, 180, 202, 1807,
	203, 204, 204, 192, 46, 46, 47, 46, 47, 48, 10, 166, 178, 22, 11, 1609, 2467, 1675, 23, 167,
	2478, 2599, 179, 190, 1741, 191, 34, 35, 12, 1610, 2468, 1676, 24, 1620, 1599, 1599, 1686, 2479, 1599, 2600,
	1742, 1752, 36, 168, 2489, 2610, 180, 2490, 1599, 2611, 2720, 2721, 192, 202, 1807, 203, 1808, 1818, 204, 46,
	47, 48, 13, 169, 2469, 181, 25, 169, 2500, 2621, 181, 2480, 2731, 2601, 193, 193, 37, 169, 2500, 2621,
	181, 2501, 1599, 2622, 2731, 2732, 193, 2491, 2830, 2612, 2830, 2831, 2722, 205, 205, 205, 49, 169, 214, 215,
	181, 214, 1873, 215, 216, 216, 193, 214, 1873, 215, 1874, 1884, 216, 217, 217, 217, 205, 58, 58, 59,
	58, 59, 60, 58, 59, 60, 61, 10, 166, 178, 22, 11, 1609, 2467, 1675, 23, 167, 2478, 2599, 179,
	190, 1741, 191, 34, 35, 12, 1610, 2468, 1676, 24, 1620, 3325, 3545, 1686, 2479, 3765, 2600, 1742, 1752, 36,
	168, 2489, 2610, 180, 2490, 3985, 2611, 2720, 2721, 192, 202, 1807, 203, 1808, 1818, 204, 46, 47, 48, 13,
	1611, 2469, 1677, 25, 1621, 3326, 3546, 1687, 2480, 3766, 2601, 1743, 1753, 37, 1630, 3335, 3555, 1696, 3380, 1599,
	1600, 3775, 1600, 1762, 2491, 3986, 2612, 3995, 1600, 2722, 1809, 1819, 1828, 49, 169, 2500, 2621, 181, 2501, 4205,
	2622, 2731, 2732, 193, 2502, 4206, 2623, 4215, 1600, 2733, 2830, 2831, 2832, 205, 214, 1873, 215, 1874, 1884, 216,
	1875, 1885, 1894, 217, 58, 59, 60, 61, 14, 170, 2470, 182, 26, 170, 2511, 2632, 182, 2481, 2742, 2602,
	194, 194, 38, 170, 2511, 2632, 182, 2512, 4425, 2633, 2742, 2743, 194, 2492, 2841, 2613, 2841, 2842, 2723, 206,
	206, 206, 50, 170, 2511, 2632, 182, 2512, 4425, 2633, 2742, 2743, 194, 2513, 4426, 2634, 4435, 1600, 2744, 2841,
	2842, 2843, 206, 2503, 2929, 2624, 2929, 2930, 2734, 2929, 2930, 2931, 2833, 218, 218, 218, 218, 62, 170, 226,
	227, 182, 226, 1939, 227, 228, 228, 194, 226, 1939, 227, 1940, 1950, 228, 229, 229, 229, 206, 226, 1939,
	227, 1940, 1950, 228, 1941, 1951, 1960, 229, 230, 230, 230, 230, 218, 70, 70, 71, 70, 71, 72, 70,
	71, 72, 73, 70, 71, 72, 73, 74, 10, 166, 178, 22, 11, 1609, 2467, 1675, 23, 167, 2478, 2599,
	179, 190, 1741, 191, 34, 35, 12, 1610, 2468, 1676, 24, 1620, 3325, 3545, 1686, 2479, 3765, 2600, 1742, 1752,
	36, 168, 2489, 2610, 180, 2490, 3985, 2611, 2720, 2721, 192, 202, 1807, 203, 1808, 1818, 204, 46, 47, 48,
	13, 1611, 2469, 1677, 25, 1621, 3326, 3546, 1687, 2480, 3766, 2601, 1743, 1753, 37, 1630, 3335, 3555, 1696, 3380,
	1599, 3600, 3775, 3820, 1762, 2491, 3986, 2612, 3995, 4040, 2722, 1809, 1819, 1828, 49, 169, 2500, 2621, 181, 2501,
	4205, 2622, 2731, 2732, 193, 2502, 4206, 2623, 4215, 4260, 2733, 2830, 2831, 2832, 205, 214, 1873, 215, 1874, 1884,
	216, 1875, 1885, 1894, 217, 58, 59, 60, 61, 14, 1612, 2470, 1678, 26, 1622, 3327, 3547, 1688, 2481, 3767,
	2602, 1744, 1754, 38, 1631, 3336, 3556, 1697, 3381, 6185, 3601, 3776, 3821, 1763, 2492, 3987, 2613, 3996, 4041, 2723,
	1810, 1820, 1829, 50, 1639, 3344, 3564, 1705, 3389, 6193, 3609, 3784, 3829, 1771, 3425, 6229, 3645, 1601, 1600, 1601,
	4004, 4049, 1601, 1837, 2503, 4207, 2624, 4216, 4261, 2734, 4224, 4269, 1601, 2833, 1876, 1886, 1895, 1903, 62, 170,
	2511, 2632, 182, 2512, 4425, 2633, 2742, 2743, 194, 2513, 4426, 2634, 4435, 4480, 2744, 2841, 2842, 2843, 206, 2514,
	4427, 2635, 4436, 4481, 2745, 4444, 4489, 1601, 2844, 2929, 2930, 2931, 2932, 218, 226, 1939, 227, 1940, 1950, 228,
	1941, 1951, 1960, 229, 1942, 1952, 1961, 1969, 230, 70, 71, 72, 73, 74, 15, 171, 2471, 183, 27, 171,
	2522, 2643, 183, 2482, 2753, 2603, 195, 195, 39, 171, 2522, 2643, 183, 2523, 4645, 2644, 2753, 2754, 195, 2493,
	2852, 2614, 2852, 2853, 2724, 207, 207, 207, 51, 171, 2522, 2643, 183, 2523, 4645, 2644, 2753, 2754, 195, 2524,
	4646, 2645, 4655, 4700, 2755, 2852, 2853, 2854, 207, 2504, 2940, 2625, 2940, 2941, 2735, 2940, 2941, 2942, 2834, 219,
	219, 219, 219, 63, 171, 2522, 2643, 183, 2523, 4645, 2644, 2753, 2754, 195, 2524, 4646, 2645, 4655, 4700, 2755,
	2852, 2853, 2854, 207, 2525, 4647, 2646, 4656, 4701, 2756, 4664, 4709, 1601, 2855, 2940, 2941, 2942, 2943, 219, 2515,
	3017, 2636, 3017, 3018, 2746, 3017, 3018, 3019, 2845, 3017, 3018, 3019, 3020, 2933, 231, 231, 231, 231, 231, 75,
	171, 238, 239, 183, 238, 2005, 239, 240, 240, 195, 238, 2005, 239, 2006, 2016, 240, 241, 241, 241, 207,
	238, 2005, 239, 2006, 2016, 240, 2007, 2017, 2026, 241, 242, 242, 242, 242, 219, 238, 2005, 239, 2006, 2016,
	240, 2007, 2017, 2026, 241, 2008, 2018, 2027, 2035, 242, 243, 243, 243, 243, 243, 231, 82, 82, 83, 82,
	83, 84, 82, 83, 84, 85, 82, 83, 84, 85, 86, 82, 83, 84, 85, 86, 87, 10, 166, 178,
	22, 11, 1609, 2467, 1675, 23, 167, 2478, 2599, 179, 190, 1741, 191, 34, 35, 12, 1610, 2468, 1676, 24,
	1620, 3325, 3545, 1686, 2479, 3765, 2600, 1742, 1752, 36, 168, 2489, 2610, 180, 2490, 3985, 2611, 2720, 2721, 192,
	202, 1807, 203, 1808, 1818, 204, 46, 47, 48, 13, 1611, 2469, 1677, 25, 1621, 3326, 3546, 1687, 2480, 3766,
	2601, 1743, 1753, 37, 1630, 3335, 3555, 1696, 3380, 1599, 3600, 3775, 3820, 1762, 2491, 3986, 2612, 3995, 4040, 2722,
	1809, 1819, 1828, 49, 169, 2500, 2621, 181, 2501, 4205, 2622, 2731, 2732, 193, 2502, 4206, 2623, 4215, 4260, 2733,
	2830, 2831, 2832, 205, 214, 1873, 215, 1874, 1884, 216, 1875, 1885, 1894, 217, 58, 59, 60, 61, 14, 1612,
	2470, 1678, 26, 1622, 3327, 3547, 1688, 2481, 3767, 2602, 1744, 1754, 38, 1631, 3336, 3556, 1697, 3381, 6185, 3601,
	3776, 3821, 1763, 2492, 3987, 2613, 3996, 4041, 2723, 1810, 1820, 1829, 50, 1639, 3344, 3564, 1705, 3389, 6193, 3609,
	3784, 3829, 1771, 3425, 6229, 3645, 6349, 1600, 3865, 4004, 4049, 4085, 1837, 2503, 4207, 2624, 4216, 4261, 2734, 4224,
	4269, 4305, 2833, 1876, 1886, 1895, 1903, 62, 170, 2511, 2632, 182, 2512, 4425, 2633, 2742, 2743, 194, 2513, 4426,
	2634, 4435, 4480, 2744, 2841, 2842, 2843, 206, 2514, 4427, 2635, 4436, 4481, 2745, 4444, 4489, 4525, 2844, 2929, 2930,
	2931, 2932, 218, 226, 1939, 227, 1940, 1950, 228, 1941, 1951, 1960, 229, 1942, 1952, 1961, 1969, 230, 70, 71,
	72, 73, 74, 15, 1613, 2471, 1679, 27, 1623, 3328, 3548, 1689, 2482, 3768, 2603, 1745, 1755, 39, 1632, 3337,
	3557, 1698, 3382, 6186, 3602, 3777, 3822, 1764, 2493, 3988, 2614, 3997, 4042, 2724, 1811, 1821, 1830, 51, 1640, 3345,
	3565, 1706, 3390, 6194, 3610, 3785, 3830, 1772, 3426, 6230, 3646, 6350, 6678, 3866, 4005, 4050, 4086, 1838, 2504, 4208,
	2625, 4217, 4262, 2735, 4225, 4270, 4306, 2834, 1877, 1887, 1896, 1904, 63, 1647, 3352, 3572, 1713, 3397, 6201, 3617,
	3792, 3837, 1779, 3433, 6237, 3653, 6357, 6685, 3873, 4012, 4057, 4093, 1845, 3461, 6265, 3681, 6385, 6713, 3901, 1602,
	1602, 1601, 1602, 4232, 4277, 4313, 1602, 1911, 2515, 4428, 2636, 4437, 4482, 2746, 4445, 4490, 4526, 2845, 4452, 4497,
	4533, 1602, 2933, 1943, 1953, 1962, 1970, 1977, 75, 171, 2522, 2643, 183, 2523, 4645, 2644, 2753, 2754, 195, 2524,
	4646, 2645, 4655, 4700, 2755, 2852, 2853, 2854, 207, 2525, 4647, 2646, 4656, 4701, 2756, 4664, 4709, 4745, 2855, 2940,
	2941, 2942, 2943, 219, 2526, 4648, 2647, 4657, 4702, 2757, 4665, 4710, 4746, 2856, 4672, 4717, 4753, 1602, 2944, 3017,
	3018, 3019, 3020, 3021, 231, 238, 2005, 239, 2006, 2016, 240, 2007, 2017, 2026, 241, 2008, 2018, 2027, 2035, 242,
	2009, 2019, 2028, 2036, 2043, 243, 82, 83, 84, 85, 86, 87, 16, 172, 2472, 184, 28, 172, 2533, 2654,
	184, 2483, 2764, 2604, 196, 196, 40, 172, 2533, 2654, 184, 2534, 4865, 2655, 2764, 2765, 196, 2494, 2863, 2615,
	2863, 2864, 2725, 208, 208, 208, 52, 172, 2533, 2654, 184, 2534, 4865, 2655, 2764, 2765, 196, 2535, 4866, 2656,
	4875, 4920, 2766, 2863, 2864, 2865, 208, 2505, 2951, 2626, 2951, 2952, 2736, 2951, 2952, 2953, 2835, 220, 220, 220,
	220, 64, 172, 2533, 2654, 184, 2534, 4865, 2655, 2764, 2765, 196, 2535, 4866, 2656, 4875, 4920, 2766, 2863, 2864,
	2865, 208, 2536, 4867, 2657, 4876, 4921, 2767, 4884, 4929, 4965, 2866, 2951, 2952, 2953, 2954, 220, 2516, 3028, 2637,
	3028, 3029, 2747, 3028, 3029, 3030, 2846, 3028, 3029, 3030, 3031, 2934, 232, 232, 232, 232, 232, 76, 172, 2533,
	2654, 184, 2534, 4865, 2655, 2764, 2765, 196, 2535, 4866, 2656, 4875, 4920, 2766, 2863, 2864, 2865, 208, 2536, 4867,
	2657, 4876, 4921, 2767, 4884, 4929, 4965, 2866, 2951, 2952, 2953, 2954, 220, 2537, 4868, 2658, 4877, 4922, 2768, 4885,
	4930, 4966, 2867, 4892, 4937, 4973, 1602, 2955, 3028, 3029, 3030, 3031, 3032, 232, 2527, 3094, 2648, 3094, 3095, 2758,
	3094, 3095, 3096, 2857, 3094, 3095, 3096, 3097, 2945, 3094, 3095, 3096, 3097, 3098, 3022, 244, 244, 244, 244, 244,
	244, 88, 172, 250, 251, 184, 250, 2071, 251, 252, 252, 196, 250, 2071, 251, 2072, 2082, 252, 253, 253,
	253, 208, 250, 2071, 251, 2072, 2082, 252, 2073, 2083, 2092, 253, 254, 254, 254, 254, 220, 250, 2071, 251,
	2072, 2082, 252, 2073, 2083, 2092, 253, 2074, 2084, 2093, 2101, 254, 255, 255, 255, 255, 255, 232, 250, 2071,
	251, 2072, 2082, 252, 2073, 2083, 2092, 253, 2074, 2084, 2093, 2101, 254, 2075, 2085, 2094, 2102, 2109, 255, 256,
	256, 256, 256, 256, 256, 244, 94, 94, 95, 94, 95, 96, 94, 95, 96, 97, 94, 95, 96, 97,
	98, 94, 95, 96, 97, 98, 99, 94, 95, 96, 97, 98, 99, 100, 10, 166, 178, 22, 11, 1609,
	2467, 1675, 23, 167, 2478, 2599, 179, 190, 1741, 191, 34, 35, 12, 1610, 2468, 1676, 24, 1620, 3325, 3545,
	1686, 2479, 3765, 2600, 1742, 1752, 36, 168, 2489, 2610, 180, 2490, 3985, 2611, 2720, 2721, 192, 202, 1807, 203,
	1808, 1818, 204, 46, 47, 48, 13, 1611, 2469, 1677, 25, 1621, 3326, 3546, 1687, 2480, 3766, 2601, 1743, 1753,
	37, 1630, 3335, 3555, 1696, 3380, 1599, 3600, 3775, 3820, 1762, 2491, 3986, 2612, 3995, 4040, 2722, 1809, 1819, 1828,
	49, 169, 2500, 2621, 181, 2501, 4205, 2622, 2731, 2732, 193, 2502, 4206, 2623, 4215, 4260, 2733, 2830, 2831, 2832,
	205, 214, 1873, 215, 1874, 1884, 216, 1875, 1885, 1894, 217, 58, 59, 60, 61, 14, 1612, 2470, 1678, 26,
	1622, 3327, 3547, 1688, 2481, 3767, 2602, 1744, 1754, 38, 1631, 3336, 3556, 1697, 3381, 6185, 3601, 3776, 3821, 1763,
	2492, 3987, 2613, 3996, 4041, 2723, 1810, 1820, 1829, 50, 1639, 3344, 3564, 1705, 3389, 6193, 3609, 3784, 3829, 1771,
	3425, 6229, 3645, 6349, 1600, 3865, 4004, 4049, 4085, 1837, 2503, 4207, 2624, 4216, 4261, 2734, 4224, 4269, 4305, 2833,
	1876, 1886, 1895, 1903, 62, 170, 2511, 2632, 182, 2512, 4425, 2633, 2742, 2743, 194, 2513, 4426, 2634, 4435, 4480,
	2744, 2841, 2842, 2843, 206, 2514, 4427, 2635, 4436, 4481, 2745, 4444, 4489, 4525, 2844, 2929, 2930, 2931, 2932, 218,
	226, 1939, 227, 1940, 1950, 228, 1941, 1951, 1960, 229, 1942, 1952, 1961, 1969, 230, 70, 71, 72, 73, 74,
	15, 1613, 2471, 1679, 27, 1623, 3328, 3548, 1689, 2482, 3768, 2603, 1745, 1755, 39, 1632, 3337, 3557, 1698, 3382,
	6186, 3602, 3777, 3822, 1764, 2493, 3988, 2614, 3997, 4042, 2724, 1811, 1821, 1830, 51, 1640, 3345, 3565, 1706, 3390,
	6194, 3610, 3785, 3830, 1772, 3426, 6230, 3646, 6350, 6678, 3866, 4005, 4050, 4086, 1838, 2504, 4208, 2625, 4217, 4262,
	2735, 4225, 4270, 4306, 2834, 1877, 1887, 1896, 1904, 63, 1647, 3352, 3572, 1713, 3397, 6201, 3617, 3792, 3837, 1779,
	3433, 6237, 3653, 6357, 6685, 3873, 4012, 4057, 4093, 1845, 3461, 6265, 3681, 6385, 6713, 3901, 6469, 6797, 1601, 4121,
	4232, 4277, 4313, 4341, 1911, 2515, 4428, 2636, 4437, 4482, 2746, 4445, 4490, 4526, 2845, 4452, 4497, 4533, 4561, 2933,
	1943, 1953, 1962, 1970, 1977, 75, 171, 2522, 2643, 183, 2523, 4645, 2644, 2753, 2754, 195, 2524, 4646, 2645, 4655,
	4700, 2755, 2852, 2853, 2854, 207, 2525, 4647, 2646, 4656, 4701, 2756, 4664, 4709, 4745, 2855, 2940, 2941, 2942, 2943,
	219, 2526, 4648, 2647, 4657, 4702, 2757, 4665, 4710, 4746, 2856, 4672, 4717, 4753, 4781, 2944, 3017, 3018, 3019, 3020,
	3021, 231, 238, 2005, 239, 2006, 2016, 240, 2007, 2017, 2026, 241, 2008, 2018, 2027, 2035, 242, 2009, 2019, 2028,
	2036, 2043, 243, 82, 83, 84, 85, 86, 87, 16, 1614, 2472, 1680, 28, 1624, 3329, 3549, 1690, 2483, 3769,
	2604, 1746, 1756, 40, 1633, 3338, 3558, 1699, 3383, 6187, 3603, 3778, 3823, 1765, 2494, 3989, 2615, 3998, 4043, 2725,
	1812, 1822, 1831, 52, 1641, 3346, 3566, 1707, 3391, 6195, 3611, 3786, 3831, 1773, 3427, 6231, 3647, 6351, 6679, 3867,
	4006, 4051, 4087, 1839, 2505, 4209, 2626, 4218, 4263, 2736, 4226, 4271, 4307, 2835, 1878, 1888, 1897, 1905, 64, 1648,
	3353, 3573, 1714, 3398, 6202, 3618, 3793, 3838, 1780, 3434, 6238, 3654, 6358, 6686, 3874, 4013, 4058, 4094, 1846, 3462,
	6266, 3682, 6386, 6714, 3902, 6470, 6798, 7007, 4122, 4233, 4278, 4314, 4342, 1912, 2516, 4429, 2637, 4438, 4483, 2747,
	4446, 4491, 4527, 2846, 4453, 4498, 4534, 4562, 2934, 1944, 1954, 1963, 1971, 1978, 76, 1654, 3359, 3579, 1720, 3404,
	6208, 3624, 3799, 3844, 1786, 3440, 6244, 3660, 6364, 6692, 3880, 4019, 4064, 4100, 1852, 3468, 6272, 3688, 6392, 6720,
	3908, 6476, 6804, 7013, 4128, 4239, 4284, 4320, 4348, 1918, 3489, 6293, 3709, 6413, 6741, 3929, 6497, 6825, 7034, 4149,
	1603, 1603, 1603, 1602, 1603, 4459, 4504, 4540, 4568, 1603, 1984, 2527, 4649, 2648, 4658, 4703, 2758, 4666, 4711, 4747,
	2857, 4673, 4718, 4754, 4782, 2945, 4679, 4724, 4760, 4788, 1603, 3022, 2010, 2020, 2029, 2037, 2044, 2050, 88, 172,
	2533, 2654, 184, 2534, 4865, 2655, 2764, 2765, 196, 2535, 4866, 2656, 4875, 4920, 2766, 2863, 2864, 2865, 208, 2536,
	4867, 2657, 4876, 4921, 2767, 4884, 4929, 4965, 2866, 2951, 2952, 2953, 2954, 220, 2537, 4868, 2658, 4877, 4922, 2768,
	4885, 4930, 4966, 2867, 4892, 4937, 4973, 5001, 2955, 3028, 3029, 3030, 3031, 3032, 232, 2538, 4869, 2659, 4878, 4923,
	2769, 4886, 4931, 4967, 2868, 4893, 4938, 4974, 5002, 2956, 4899, 4944, 4980, 5008, 1603, 3033, 3094, 3095, 3096, 3097,
	3098, 3099, 244, 250, 2071, 251, 2072, 2082, 252, 2073, 2083, 2092, 253, 2074, 2084, 2093, 2101, 254, 2075, 2085,
	2094, 2102, 2109, 255, 2076, 2086, 2095, 2103, 2110, 2116, 256, 94, 95, 96, 97, 98, 99, 100, 17, 173,
	2473, 185, 29, 173, 2544, 2665, 185, 2484, 2775, 2605, 197, 197, 41, 173, 2544, 2665, 185, 2545, 5085, 2666,
	2775, 2776, 197, 2495, 2874, 2616, 2874, 2875, 2726, 209, 209, 209, 53, 173, 2544, 2665, 185, 2545, 5085, 2666,
	2775, 2776, 197, 2546, 5086, 2667, 5095, 5140, 2777, 2874, 2875, 2876, 209, 2506, 2962, 2627, 2962, 2963, 2737, 2962,
	2963, 2964, 2836, 221, 221, 221, 221, 65, 173, 2544, 2665, 185, 2545, 5085, 2666, 2775, 2776, 197, 2546, 5086,
	2667, 5095, 5140, 2777, 2874, 2875, 2876, 209, 2547, 5087, 2668, 5096, 5141, 2778, 5104, 5149, 5185, 2877, 2962, 2963,
	2964, 2965, 221, 2517, 3039, 2638, 3039, 3040, 2748, 3039, 3040, 3041, 2847, 3039, 3040, 3041, 3042, 2935, 233, 233,
	233, 233, 233, 77, 173, 2544, 2665, 185, 2545, 5085, 2666, 2775, 2776, 197, 2546, 5086, 2667, 5095, 5140, 2777,
	2874, 2875, 2876, 209, 2547, 5087, 2668, 5096, 5141, 2778, 5104, 5149, 5185, 2877, 2962, 2963, 2964, 2965, 221, 2548,
	5088, 2669, 5097, 5142, 2779, 5105, 5150, 5186, 2878, 5112, 5157, 5193, 5221, 2966, 3039, 3040, 3041, 3042, 3043, 233,
	2528, 3105, 2649, 3105, 3106, 2759, 3105, 3106, 3107, 2858, 3105, 3106, 3107, 3108, 2946, 3105, 3106, 3107, 3108, 3109,
	3023, 245, 245, 245, 245, 245, 245, 89, 173, 2544, 2665, 185, 2545, 5085, 2666, 2775, 2776, 197, 2546, 5086,
	2667, 5095, 5140, 2777, 2874, 2875, 2876, 209, 2547, 5087, 2668, 5096, 5141, 2778, 5104, 5149, 5185, 2877, 2962, 2963,
	2964, 2965, 221, 2548, 5088, 2669, 5097, 5142, 2779, 5105, 5150, 5186, 2878, 5112, 5157, 5193, 5221, 2966, 3039, 3040,
	3041, 3042, 3043, 233, 2549, 5089, 2670, 5098, 5143, 2780, 5106, 5151, 5187, 2879, 5113, 5158, 5194, 5222, 2967, 5119,
	5164, 5200, 5228, 1603, 3044, 3105, 3106, 3107, 3108, 3109, 3110, 245, 2539, 3160, 2660, 3160, 3161, 2770, 3160, 3161,
	3162, 2869, 3160, 3161, 3162, 3163, 2957, 3160, 3161, 3162, 3163, 3164, 3034, 3160, 3161, 3162, 3163, 3164, 3165, 3100,
	257, 257, 257, 257, 257, 257, 257, 101, 173, 262, 263, 185, 262, 2137, 263, 264, 264, 197, 262, 2137,
	263, 2138, 2148, 264, 265, 265, 265, 209, 262, 2137, 263, 2138, 2148, 264, 2139, 2149, 2158, 265, 266, 266,
	266, 266, 221, 262, 2137, 263, 2138, 2148, 264, 2139, 2149, 2158, 265, 2140, 2150, 2159, 2167, 266, 267, 267,
	267, 267, 267, 233, 262, 2137, 263, 2138, 2148, 264, 2139, 2149, 2158, 265, 2140, 2150, 2159, 2167, 266, 2141,
	2151, 2160, 2168, 2175, 267, 268, 268, 268, 268, 268, 268, 245, 262, 2137, 263, 2138, 2148, 264, 2139, 2149,
	2158, 265, 2140, 2150, 2159, 2167, 266, 2141, 2151, 2160, 2168, 2175, 267, 2142, 2152, 2161, 2169, 2176, 2182, 268,
	269, 269, 269, 269, 269, 269, 269, 257, 106, 106, 107, 106, 107, 108, 106, 107, 108, 109, 106, 107,
	108, 109, 110, 106, 107, 108, 109, 110, 111, 106, 107, 108, 109, 110, 111, 112, 106, 107, 108, 109,
	110, 111, 112, 113, 10, 166, 178, 22, 11, 1609, 2467, 1675, 23, 167, 2478, 2599, 179, 190, 1741, 191,
	34, 35, 12, 1610, 2468, 1676, 24, 1620, 3325, 3545, 1686, 2479, 3765, 2600, 1742, 1752, 36, 168, 2489, 2610,
	180, 2490, 3985, 2611, 2720, 2721, 192, 202, 1807, 203, 1808, 1818, 204, 46, 47, 48, 13, 1611, 2469, 1677,
	25, 1621, 3326, 3546, 1687, 2480, 3766, 2601, 1743, 1753, 37, 1630, 3335, 3555, 1696, 3380, 1599, 3600, 3775, 3820,
	1762, 2491, 3986, 2612, 3995, 4040, 2722, 1809, 1819, 1828, 49, 169, 2500, 2621, 181, 2501, 4205, 2622, 2731, 2732,
	193, 2502, 4206, 2623, 4215, 4260, 2733, 2830, 2831, 2832, 205, 214, 1873, 215, 1874, 1884, 216, 1875, 1885, 1894,
	217, 58, 59, 60, 61, 14, 1612, 2470, 1678, 26, 1622, 3327, 3547, 1688, 2481, 3767, 2602, 1744, 1754, 38,
	1631, 3336, 3556, 1697, 3381, 6185, 3601, 3776, 3821, 1763, 2492, 3987, 2613, 3996, 4041, 2723, 1810, 1820, 1829, 50,
	1639, 3344, 3564, 1705, 3389, 6193, 3609, 3784, 3829, 1771, 3425, 6229, 3645, 6349, 1600, 3865, 4004, 4049, 4085, 1837,
	2503, 4207, 2624, 4216, 4261, 2734, 4224, 4269, 4305, 2833, 1876, 1886, 1895, 1903, 62, 170, 2511, 2632, 182, 2512,
	4425, 2633, 2742, 2743, 194, 2513, 4426, 2634, 4435, 4480, 2744, 2841, 2842, 2843, 206, 2514, 4427, 2635, 4436, 4481,
	2745, 4444, 4489, 4525, 2844, 2929, 2930, 2931, 2932, 218, 226, 1939, 227, 1940, 1950, 228, 1941, 1951, 1960, 229,
	1942, 1952, 1961, 1969, 230, 70, 71, 72, 73, 74, 15, 1613, 2471, 1679, 27, 1623, 3328, 3548, 1689, 2482,
	3768, 2603, 1745, 1755, 39, 1632, 3337, 3557, 1698, 3382, 6186, 3602, 3777, 3822, 1764, 2493, 3988, 2614, 3997, 4042,
	2724, 1811, 1821, 1830, 51, 1640, 3345, 3565, 1706, 3390, 6194, 3610, 3785, 3830, 1772, 3426, 6230, 3646, 6350, 6678,
	3866, 4005, 4050, 4086, 1838, 2504, 4208, 2625, 4217, 4262, 2735, 4225, 4270, 4306, 2834, 1877, 1887, 1896, 1904, 63,
	1647, 3352, 3572, 1713, 3397, 6201, 3617, 3792, 3837, 1779, 3433, 6237, 3653, 6357, 6685, 3873, 4012, 4057, 4093, 1845,
	3461, 6265, 3681, 6385, 6713, 3901, 6469, 6797, 1601, 4121, 4232, 4277, 4313, 4341, 1911, 2515, 4428, 2636, 4437, 4482,
	2746, 4445, 4490, 4526, 2845, 4452, 4497, 4533, 4561, 2933, 1943, 1953, 1962, 1970, 1977, 75, 171, 2522, 2643, 183,
	2523, 4645, 2644, 2753, 2754, 195, 2524, 4646, 2645, 4655, 4700, 2755, 2852, 2853, 2854, 207, 2525, 4647, 2646, 4656,
	4701, 2756, 4664, 4709, 4745, 2855, 2940, 2941, 2942, 2943, 219, 2526, 4648, 2647, 4657, 4702, 2757, 4665, 4710, 4746,
	2856, 4672, 4717, 4753, 4781, 2944, 3017, 3018, 3019, 3020, 3021, 231, 238, 2005, 239, 2006, 2016, 240, 2007, 2017,
	2026, 241, 2008, 2018, 2027, 2035, 242, 2009, 2019, 2028, 2036, 2043, 243, 82, 83, 84, 85, 86, 87, 16,
	1614, 2472, 1680, 28, 1624, 3329, 3549, 1690, 2483, 3769, 2604, 1746, 1756, 40, 1633, 3338, 3558, 1699, 3383, 6187,
	3603, 3778, 3823, 1765, 2494, 3989, 2615, 3998, 4043, 2725, 1812, 1822, 1831, 52, 1641, 3346, 3566, 1707, 3391, 6195,
	3611, 3786, 3831, 1773, 3427, 6231, 3647, 6351, 6679, 3867, 4006, 4051, 4087, 1839, 2505, 4209, 2626, 4218, 4263, 2736,
	4226, 4271, 4307, 2835, 1878, 1888, 1897, 1905, 64, 1648, 3353, 3573, 1714, 3398, 6202, 3618, 3793, 3838, 1780, 3434,
	6238, 3654, 6358, 6686, 3874, 4013, 4058, 4094, 1846, 3462, 6266, 3682, 6386, 6714, 3902, 6470, 6798, 7007, 4122, 4233,
	4278, 4314, 4342, 1912, 2516, 4429, 2637, 4438, 4483, 2747, 4446, 4491, 4527, 2846, 4453, 4498, 4534, 4562, 2934, 1944,
	1954, 1963, 1971, 1978, 76, 1654, 3359, 3579, 1720, 3404, 6208, 3624, 3799, 3844, 1786, 3440, 6244, 3660, 6364, 6692,
	3880, 4019, 4064, 4100, 1852, 3468, 6272, 3688, 6392, 6720, 3908, 6476, 6804, 7013, 4128, 4239, 4284, 4320, 4348, 1918,
	3489, 6293, 3709, 6413, 6741, 3929, 6497, 6825, 7034, 4149, 6553, 6881, 7090, 1602, 4369, 4459, 4504, 4540, 4568, 4589,
	1984, 2527, 4649, 2648, 4658, 4703, 2758, 4666, 4711, 4747, 2857, 4673, 4718, 4754, 4782, 2945, 4679, 4724, 4760, 4788,
	4809, 3022, 2010, 2020, 2029, 2037, 2044, 2050, 88, 172, 2533, 2654, 184, 2534, 4865, 2655, 2764, 2765, 196, 2535,
	4866, 2656, 4875, 4920, 2766, 2863, 2864, 2865, 208, 2536, 4867, 2657, 4876, 4921, 2767, 4884, 4929, 4965, 2866, 2951,
	2952, 2953, 2954, 220, 2537, 4868, 2658, 4877, 4922, 2768, 4885, 4930, 4966, 2867, 4892, 4937, 4973, 5001, 2955, 3028,
	3029, 3030, 3031, 3032, 232, 2538, 4869, 2659, 4878, 4923, 2769, 4886, 4931, 4967, 2868, 4893, 4938, 4974, 5002, 2956,
	4899, 4944, 4980, 5008, 5029, 3033, 3094, 3095, 3096, 3097, 3098, 3099, 244, 250, 2071, 251, 2072, 2082, 252, 2073,
	2083, 2092, 253, 2074, 2084, 2093, 2101, 254, 2075, 2085, 2094, 2102, 2109, 255, 2076, 2086, 2095, 2103, 2110, 2116,
	256, 94, 95, 96, 97, 98, 99, 100, 17, 1615, 2473, 1681, 29, 1625, 3330, 3550, 1691, 2484, 3770, 2605,
	1747, 1757, 41, 1634, 3339, 3559, 1700, 3384, 6188, 3604, 3779, 3824, 1766, 2495, 3990, 2616, 3999, 4044, 2726, 1813,
	1823, 1832, 53, 1642, 3347, 3567, 1708, 3392, 6196, 3612, 3787, 3832, 1774, 3428, 6232, 3648, 6352, 6680, 3868, 4007,
	4052, 4088, 1840, 2506, 4210, 2627, 4219, 4264, 2737, 4227, 4272, 4308, 2836, 1879, 1889, 1898, 1906, 65, 1649, 3354,
	3574, 1715, 3399, 6203, 3619, 3794, 3839, 1781, 3435, 6239, 3655, 6359, 6687, 3875, 4014, 4059, 4095, 1847, 3463, 6267,
	3683, 6387, 6715, 3903, 6471, 6799, 7008, 4123, 4234, 4279, 4315, 4343, 1913, 2517, 4430, 2638, 4439, 4484, 2748, 4447,
	4492, 4528, 2847, 4454, 4499, 4535, 4563, 2935, 1945, 1955, 1964, 1972, 1979, 77, 1655, 3360, 3580, 1721, 3405, 6209,
	3625, 3800, 3845, 1787, 3441, 6245, 3661, 6365, 6693, 3881, 4020, 4065, 4101, 1853, 3469, 6273, 3689, 6393, 6721, 3909,
	6477, 6805, 7014, 4129, 4240, 4285, 4321, 4349, 1919, 3490, 6294, 3710, 6414, 6742, 3930, 6498, 6826, 7035, 4150, 6554,
	6882, 7091, 7216, 4370, 4460, 4505, 4541, 4569, 4590, 1985, 2528, 4650, 2649, 4659, 4704, 2759, 4667, 4712, 4748, 2858,
	4674, 4719, 4755, 4783, 2946, 4680, 4725, 4761, 4789, 4810, 3023, 2011, 2021, 2030, 2038, 2045, 2051, 89, 1660, 3365,
	3585, 1726, 3410, 6214, 3630, 3805, 3850, 1792, 3446, 6250, 3666, 6370, 6698, 3886, 4025, 4070, 4106, 1858, 3474, 6278,
	3694, 6398, 6726, 3914, 6482, 6810, 7019, 4134, 4245, 4290, 4326, 4354, 1924, 3495, 6299, 3715, 6419, 6747, 3935, 6503,
	6831, 7040, 4155, 6559, 6887, 7096, 7221, 4375, 4465, 4510, 4546, 4574, 4595, 1990, 3510, 6314, 3730, 6434, 6762, 3950,
	6518, 6846, 7055, 4170, 6574, 6902, 7111, 7236, 4390, 1604, 1604, 1604, 1604, 1603, 1604, 4685, 4730, 4766, 4794, 4815,
	1604, 2056, 2539, 4870, 2660, 4879, 4924, 2770, 4887, 4932, 4968, 2869, 4894, 4939, 4975, 5003, 2957, 4900, 4945, 4981,
	5009, 5030, 3034, 4905, 4950, 4986, 5014, 5035, 1604, 3100, 2077, 2087, 2096, 2104, 2111, 2117, 2122, 101, 173, 2544,
	2665, 185, 2545, 5085, 2666, 2775, 2776, 197, 2546, 5086, 2667, 5095, 5140, 2777, 2874, 2875, 2876, 209, 2547, 5087,
	2668, 5096, 5141, 2778, 5104, 5149, 5185, 2877, 2962, 2963, 2964, 2965, 221, 2548, 5088, 2669, 5097, 5142, 2779, 5105,
	5150, 5186, 2878, 5112, 5157, 5193, 5221, 2966, 3039, 3040, 3041, 3042, 3043, 233, 2549, 5089, 2670, 5098, 5143, 2780,
	5106, 5151, 5187, 2879, 5113, 5158, 5194, 5222, 2967, 5119, 5164, 5200, 5228, 5249, 3044, 3105, 3106, 3107, 3108, 3109,
	3110, 245, 2550, 5090, 2671, 5099, 5144, 2781, 5107, 5152, 5188, 2880, 5114, 5159, 5195, 5223, 2968, 5120, 5165, 5201,
	5229, 5250, 3045, 5125, 5170, 5206, 5234, 5255, 1604, 3111, 3160, 3161, 3162, 3163, 3164, 3165, 3166, 257, 262, 2137,
	263, 2138, 2148, 264, 2139, 2149, 2158, 265, 2140, 2150, 2159, 2167, 266, 2141, 2151, 2160, 2168, 2175, 267, 2142,
	2152, 2161, 2169, 2176, 2182, 268, 2143, 2153, 2162, 2170, 2177, 2183, 2188, 269, 106, 107, 108, 109, 110, 111,
	112, 113, 18, 174, 2474, 186, 30, 174, 2555, 2676, 186, 2485, 2786, 2606, 198, 198, 42, 174, 2555, 2676,
	186, 2556, 5305, 2677, 2786, 2787, 198, 2496, 2885, 2617, 2885, 2886, 2727, 210, 210, 210, 54, 174, 2555, 2676,
	186, 2556, 5305, 2677, 2786, 2787, 198, 2557, 5306, 2678, 5315, 5360, 2788, 2885, 2886, 2887, 210, 2507, 2973, 2628,
	2973, 2974, 2738, 2973, 2974, 2975, 2837, 222, 222, 222, 222, 66, 174, 2555, 2676, 186, 2556, 5305, 2677, 2786,
	2787, 198, 2557, 5306, 2678, 5315, 5360, 2788, 2885, 2886, 2887, 210, 2558, 5307, 2679, 5316, 5361, 2789, 5324, 5369,
	5405, 2888, 2973, 2974, 2975, 2976, 222, 2518, 3050, 2639, 3050, 3051, 2749, 3050, 3051, 3052, 2848, 3050, 3051, 3052,
	3053, 2936, 234, 234, 234, 234, 234, 78, 174, 2555, 2676, 186, 2556, 5305, 2677, 2786, 2787, 198, 2557, 5306,
	2678, 5315, 5360, 2788, 2885, 2886, 2887, 210, 2558, 5307, 2679, 5316, 5361, 2789, 5324, 5369, 5405, 2888, 2973, 2974,
	2975, 2976, 222, 2559, 5308, 2680, 5317, 5362, 2790, 5325, 5370, 5406, 2889, 5332, 5377, 5413, 5441, 2977, 3050, 3051,
	3052, 3053, 3054, 234, 2529, 3116, 2650, 3116, 3117, 2760, 3116, 3117, 3118, 2859, 3116, 3117, 3118, 3119, 2947, 3116,
	3117, 3118, 3119, 3120, 3024, 246, 246, 246, 246, 246, 246, 90, 174, 2555, 2676, 186, 2556, 5305, 2677, 2786,
	2787, 198, 2557, 5306, 2678, 5315, 5360, 2788, 2885, 2886, 2887, 210, 2558, 5307, 2679, 5316, 5361, 2789, 5324, 5369,
	5405, 2888, 2973, 2974, 2975, 2976, 222, 2559, 5308, 2680, 5317, 5362, 2790, 5325, 5370, 5406, 2889, 5332, 5377, 5413,
	5441, 2977, 3050, 3051, 3052, 3053, 3054, 234, 2560, 5309, 2681, 5318, 5363, 2791, 5326, 5371, 5407, 2890, 5333, 5378,
	5414, 5442, 2978, 5339, 5384, 5420, 5448, 5469, 3055, 3116, 3117, 3118, 3119, 3120, 3121, 246, 2540, 3171, 2661, 3171,
	3172, 2771, 3171, 3172, 3173, 2870, 3171, 3172, 3173, 3174, 2958, 3171, 3172, 3173, 3174, 3175, 3035, 3171, 3172, 3173,
	3174, 3175, 3176, 3101, 258, 258, 258, 258, 258, 258, 258, 102, 174, 2555, 2676, 186, 2556, 5305, 2677, 2786,
	2787, 198, 2557, 5306, 2678, 5315, 5360, 2788, 2885, 2886, 2887, 210, 2558, 5307, 2679, 5316, 5361, 2789, 5324, 5369,
	5405, 2888, 2973, 2974, 2975, 2976, 222, 2559, 5308, 2680, 5317, 5362, 2790, 5325, 5370, 5406, 2889, 5332, 5377, 5413,
	5441, 2977, 3050, 3051, 3052, 3053, 3054, 234, 2560, 5309, 2681, 5318, 5363, 2791, 5326, 5371, 5407, 2890, 5333, 5378,
	5414, 5442, 2978, 5339, 5384, 5420, 5448, 5469, 3055, 3116, 3117, 3118, 3119, 3120, 3121, 246, 2561, 5310, 2682, 5319,
	5364, 2792, 5327, 5372, 5408, 2891, 5334, 5379, 5415, 5443, 2979, 5340, 5385, 5421, 5449, 5470, 3056, 5345, 5390, 5426,
	5454, 5475, 1604, 3122, 3171, 3172, 3173, 3174, 3175, 3176, 3177, 258, 2551, 3215, 2672, 3215, 3216, 2782, 3215, 3216,
	3217, 2881, 3215, 3216, 3217, 3218, 2969, 3215, 3216, 3217, 3218, 3219, 3046, 3215, 3216, 3217, 3218, 3219, 3220, 3112,
	3215, 3216, 3217, 3218, 3219, 3220, 3221, 3167, 270, 270, 270, 270, 270, 270, 270, 270, 114, 174, 274, 275,
	186, 274, 2203, 275, 276, 276, 198, 274, 2203, 275, 2204, 2214, 276, 277, 277, 277, 210, 274, 2203, 275,
	2204, 2214, 276, 2205, 2215, 2224, 277, 278, 278, 278, 278, 222, 274, 2203, 275, 2204, 2214, 276, 2205, 2215,
	2224, 277, 2206, 2216, 2225, 2233, 278, 279, 279, 279, 279, 279, 234, 274, 2203, 275, 2204, 2214, 276, 2205,
	2215, 2224, 277, 2206, 2216, 2225, 2233, 278, 2207, 2217, 2226, 2234, 2241, 279, 280, 280, 280, 280, 280, 280,
	246, 274, 2203, 275, 2204, 2214, 276, 2205, 2215, 2224, 277, 2206, 2216, 2225, 2233, 278, 2207, 2217, 2226, 2234,
	2241, 279, 2208, 2218, 2227, 2235, 2242, 2248, 280, 281, 281, 281, 281, 281, 281, 281, 258, 274, 2203, 275,
	2204, 2214, 276, 2205, 2215, 2224, 277, 2206, 2216, 2225, 2233, 278, 2207, 2217, 2226, 2234, 2241, 279, 2208, 2218,
	2227, 2235, 2242, 2248, 280, 2209, 2219, 2228, 2236, 2243, 2249, 2254, 281, 282, 282, 282, 282, 282, 282, 282,
	282, 270, 118, 118, 119, 118, 119, 120, 118, 119, 120, 121, 118, 119, 120, 121, 122, 118, 119, 120,
	121, 122, 123, 118, 119, 120, 121, 122, 123, 124, 118, 119, 120, 121, 122, 123, 124, 125, 118, 119,
	120, 121, 122, 123, 124, 125, 126, 10, 166, 178, 22, 11, 1609, 2467, 1675, 23, 167, 2478, 2599, 179,
	190, 1741, 191, 34, 35, 12, 1610, 2468, 1676, 24, 1620, 3325, 3545, 1686, 2479, 3765, 2600, 1742, 1752, 36,
	168, 2489, 2610, 180, 2490, 3985, 2611, 2720, 2721, 192, 202, 1807, 203, 1808, 1818, 204, 46, 47, 48, 13,
	1611, 2469, 1677, 25, 1621, 3326, 3546, 1687, 2480, 3766, 2601, 1743, 1753, 37, 1630, 3335, 3555, 1696, 3380, 1599,
	3600, 3775, 3820, 1762, 2491, 3986, 2612, 3995, 4040, 2722, 1809, 1819, 1828, 49, 169, 2500, 2621, 181, 2501, 4205,
	2622, 2731, 2732, 193, 2502, 4206, 2623, 4215, 4260, 2733, 2830, 2831, 2832, 205, 214, 1873, 215, 1874, 1884, 216,
	1875, 1885, 1894, 217, 58, 59, 60, 61, 14, 1612, 2470, 1678, 26, 1622, 3327, 3547, 1688, 2481, 3767, 2602,
	1744, 1754, 38, 1631, 3336, 3556, 1697, 3381, 6185, 3601, 3776, 3821, 1763, 2492, 3987, 2613, 3996, 4041, 2723, 1810,
	1820, 1829, 50, 1639, 3344, 3564, 1705, 3389, 6193, 3609, 3784, 3829, 1771, 3425, 6229, 3645, 6349, 1600, 3865, 4004,
	4049, 4085, 1837, 2503, 4207, 2624, 4216, 4261, 2734, 4224, 4269, 4305, 2833, 1876, 1886, 1895, 1903, 62, 170, 2511,
	2632, 182, 2512, 4425, 2633, 2742, 2743, 194, 2513, 4426, 2634, 4435, 4480, 2744, 2841, 2842, 2843, 206, 2514, 4427,
	2635, 4436, 4481, 2745, 4444, 4489, 4525, 2844, 2929, 2930, 2931, 2932, 218, 226, 1939, 227, 1940, 1950, 228, 1941,
	1951, 1960, 229, 1942, 1952, 1961, 1969, 230, 70, 71, 72, 73, 74, 15, 1613, 2471, 1679, 27, 1623, 3328,
	3548, 1689, 2482, 3768, 2603, 1745, 1755, 39, 1632, 3337, 3557, 1698, 3382, 6186, 3602, 3777, 3822, 1764, 2493, 3988,
	2614, 3997, 4042, 2724, 1811, 1821, 1830, 51, 1640, 3345, 3565, 1706, 3390, 6194, 3610, 3785, 3830, 1772, 3426, 6230,
	3646, 6350, 6678, 3866, 4005, 4050, 4086, 1838, 2504, 4208, 2625, 4217, 4262, 2735, 4225, 4270, 4306, 2834, 1877, 1887,
	1896, 1904, 63, 1647, 3352, 3572, 1713, 3397, 6201, 3617, 3792, 3837, 1779, 3433, 6237, 3653, 6357, 6685, 3873, 4012,
	4057, 4093, 1845, 3461, 6265, 3681, 6385, 6713, 3901, 6469, 6797, 1601, 4121, 4232, 4277, 4313, 4341, 1911, 2515, 4428,
	2636, 4437, 4482, 2746, 4445, 4490, 4526, 2845, 4452, 4497, 4533, 4561, 2933, 1943, 1953, 1962, 1970, 1977, 75, 171,
	2522, 2643, 183, 2523, 4645, 2644, 2753, 2754, 195, 2524, 4646, 2645, 4655, 4700, 2755, 2852, 2853, 2854, 207, 2525,
	4647, 2646, 4656, 4701, 2756, 4664, 4709, 4745, 2855, 2940, 2941, 2942, 2943, 219, 2526, 4648, 2647, 4657, 4702, 2757,
	4665, 4710, 4746, 2856, 4672, 4717, 4753, 4781, 2944, 3017, 3018, 3019, 3020, 3021, 231, 238, 2005, 239, 2006, 2016,
	240, 2007, 2017, 2026, 241, 2008, 2018, 2027, 2035, 242, 2009, 2019, 2028, 2036, 2043, 243, 82, 83, 84, 85,
	86, 87, 16, 1614, 2472, 1680, 28, 1624, 3329, 3549, 1690, 2483, 3769, 2604, 1746, 1756, 40, 1633, 3338, 3558,
	1699, 3383, 6187, 3603, 3778, 3823, 1765, 2494, 3989, 2615, 3998, 4043, 2725, 1812, 1822, 1831, 52, 1641, 3346, 3566,
	1707, 3391, 6195, 3611, 3786, 3831, 1773, 3427, 6231, 3647, 6351, 6679, 3867, 4006, 4051, 4087, 1839, 2505, 4209, 2626,
	4218, 4263, 2736, 4226, 4271, 4307, 2835, 1878, 1888, 1897, 1905, 64, 1648, 3353, 3573, 1714, 3398, 6202, 3618, 3793,
	3838, 1780, 3434, 6238, 3654, 6358, 6686, 3874, 4013, 4058, 4094, 1846, 3462, 6266, 3682, 6386, 6714, 3902, 6470, 6798,
	7007, 4122, 4233, 4278, 4314, 4342, 1912, 2516, 4429, 2637, 4438, 4483, 2747, 4446, 4491, 4527, 2846, 4453, 4498, 4534,
	4562, 2934, 1944, 1954, 1963, 1971, 1978, 76, 1654, 3359, 3579, 1720, 3404, 6208, 3624, 3799, 3844, 1786, 3440, 6244,
	3660, 6364, 6692, 3880, 4019, 4064, 4100, 1852, 3468, 6272, 3688, 6392, 6720, 3908, 6476, 6804, 7013, 4128, 4239, 4284,
	4320, 4348, 1918, 3489, 6293, 3709, 6413, 6741, 3929, 6497, 6825, 7034, 4149, 6553, 6881, 7090, 1602, 4369, 4459, 4504,
	4540, 4568, 4589, 1984, 2527, 4649, 2648, 4658, 4703, 2758, 4666, 4711, 4747, 2857, 4673, 4718, 4754, 4782, 2945, 4679,
	4724, 4760, 4788, 4809, 3022, 2010, 2020, 2029, 2037, 2044, 2050, 88, 172, 2533, 2654, 184, 2534, 4865, 2655, 2764,
	2765, 196, 2535, 4866, 2656, 4875, 4920, 2766, 2863, 2864, 2865, 208, 2536, 4867, 2657, 4876, 4921, 2767, 4884, 4929,
	4965, 2866, 2951, 2952, 2953, 2954, 220, 2537, 4868, 2658, 4877, 4922, 2768, 4885, 4930, 4966, 2867, 4892, 4937, 4973,
	5001, 2955, 3028, 3029, 3030, 3031, 3032, 232, 2538, 4869, 2659, 4878, 4923, 2769, 4886, 4931, 4967, 2868, 4893, 4938,
	4974, 5002, 2956, 4899, 4944, 4980, 5008, 5029, 3033, 3094, 3095, 3096, 3097, 3098, 3099, 244, 250, 2071, 251, 2072,
	2082, 252, 2073, 2083, 2092, 253, 2074, 2084, 2093, 2101, 254, 2075, 2085, 2094, 2102, 2109, 255, 2076, 2086, 2095,
	2103, 2110, 2116, 256, 94, 95, 96, 97, 98, 99, 100, 17, 1615, 2473, 1681, 29, 1625, 3330, 3550, 1691,
	2484, 3770, 2605, 1747, 1757, 41, 1634, 3339, 3559, 1700, 3384, 6188, 3604, 3779, 3824, 1766, 2495, 3990, 2616, 3999,
	4044, 2726, 1813, 1823, 1832, 53, 1642, 3347, 3567, 1708, 3392, 6196, 3612, 3787, 3832, 1774, 3428, 6232, 3648, 6352,
	6680, 3868, 4007, 4052, 4088, 1840, 2506, 4210, 2627, 4219, 4264, 2737, 4227, 4272, 4308, 2836, 1879, 1889, 1898, 1906,
	65, 1649, 3354, 3574, 1715, 3399, 6203, 3619, 3794, 3839, 1781, 3435, 6239, 3655, 6359, 6687, 3875, 4014, 4059, 4095,
	1847, 3463, 6267, 3683, 6387, 6715, 3903, 6471, 6799, 7008, 4123, 4234, 4279, 4315, 4343, 1913, 2517, 4430, 2638, 4439,
	4484, 2748, 4447, 4492, 4528, 2847, 4454, 4499, 4535, 4563, 2935, 1945, 1955, 1964, 1972, 1979, 77, 1655, 3360, 3580,
	1721, 3405, 6209, 3625, 3800, 3845, 1787, 3441, 6245, 3661, 6365, 6693, 3881, 4020, 4065, 4101, 1853, 3469, 6273, 3689,
	6393, 6721, 3909, 6477, 6805, 7014, 4129, 4240, 4285, 4321, 4349, 1919, 3490, 6294, 3710, 6414, 6742, 3930, 6498, 6826,
	7035, 4150, 6554, 6882, 7091, 7216, 4370, 4460, 4505, 4541, 4569, 4590, 1985, 2528, 4650, 2649, 4659, 4704, 2759, 4667,
	4712, 4748, 2858, 4674, 4719, 4755, 4783, 2946, 4680, 4725, 4761, 4789, 4810, 3023, 2011, 2021, 2030, 2038, 2045, 2051,
	89, 1660, 3365, 3585, 1726, 3410, 6214, 3630, 3805, 3850, 1792, 3446, 6250, 3666, 6370, 6698, 3886, 4025, 4070, 4106,
	1858, 3474, 6278, 3694, 6398, 6726, 3914, 6482, 6810, 7019, 4134, 4245, 4290, 4326, 4354, 1924, 3495, 6299, 3715, 6419,
	6747, 3935, 6503, 6831, 7040, 4155, 6559, 6887, 7096, 7221, 4375, 4465, 4510, 4546, 4574, 4595, 1990, 3510, 6314, 3730,
	6434, 6762, 3950, 6518, 6846, 7055, 4170, 6574, 6902, 7111, 7236, 4390, 6609, 6937, 7146, 7271, 1603, 4610, 4685, 4730,
	4766, 4794, 4815, 4830, 2056, 2539, 4870, 2660, 4879, 4924, 2770, 4887, 4932, 4968, 2869, 4894, 4939, 4975, 5003, 2957,
	4900, 4945, 4981, 5009, 5030, 3034, 4905, 4950, 4986, 5014, 5035, 5050, 3100, 2077, 2087, 2096, 2104, 2111, 2117, 2122,
	101, 173, 2544, 2665, 185, 2545, 5085, 2666, 2775, 2776, 197, 2546, 5086, 2667, 5095, 5140, 2777, 2874, 2875, 2876,
	209, 2547, 5087, 2668, 5096, 5141, 2778, 5104, 5149, 5185, 2877, 2962, 2963, 2964, 2965, 221, 2548, 5088, 2669, 5097,
	5142, 2779, 5105, 5150, 5186, 2878, 5112, 5157, 5193, 5221, 2966, 3039, 3040, 3041, 3042, 3043, 233, 2549, 5089, 2670,
	5098, 5143, 2780, 5106, 5151, 5187, 2879, 5113, 5158, 5194, 5222, 2967, 5119, 5164, 5200, 5228, 5249, 3044, 3105, 3106,
	3107, 3108, 3109, 3110, 245, 2550, 5090, 2671, 5099, 5144, 2781, 5107, 5152, 5188, 2880, 5114, 5159, 5195, 5223, 2968,
	5120, 5165, 5201, 5229, 5250, 3045, 5125, 5170, 5206, 5234, 5255, 5270, 3111, 3160, 3161, 3162, 3163, 3164, 3165, 3166,
	257, 262, 2137, 263, 2138, 2148, 264, 2139, 2149, 2158, 265, 2140, 2150, 2159, 2167, 266, 2141, 2151, 2160, 2168,
	2175, 267, 2142, 2152, 2161, 2169, 2176, 2182, 268, 2143, 2153, 2162, 2170, 2177, 2183, 2188, 269, 106, 107, 108,
	109, 110, 111, 112, 113, 18, 1616, 2474, 1682, 30, 1626, 3331, 3551, 1692, 2485, 3771, 2606, 1748, 1758, 42,
	1635, 3340, 3560, 1701, 3385, 6189, 3605, 3780, 3825, 1767, 2496, 3991, 2617, 4000, 4045, 2727, 1814, 1824, 1833, 54,
	1643, 3348, 3568, 1709, 3393, 6197, 3613, 3788, 3833, 1775, 3429, 6233, 3649, 6353, 6681, 3869, 4008, 4053, 4089, 1841,
	2507, 4211, 2628, 4220, 4265, 2738, 4228, 4273, 4309, 2837, 1880, 1890, 1899, 1907, 66, 1650, 3355, 3575, 1716, 3400,
	6204, 3620, 3795, 3840, 1782, 3436, 6240, 3656, 6360, 6688, 3876, 4015, 4060, 4096, 1848, 3464, 6268, 3684, 6388, 6716,
	3904, 6472, 6800, 7009, 4124, 4235, 4280, 4316, 4344, 1914, 2518, 4431, 2639, 4440, 4485, 2749, 4448, 4493, 4529, 2848,
	4455, 4500, 4536, 4564, 2936, 1946, 1956, 1965, 1973, 1980, 78, 1656, 3361, 3581, 1722, 3406, 6210, 3626, 3801, 3846,
	1788, 3442, 6246, 3662, 6366, 6694, 3882, 4021, 4066, 4102, 1854, 3470, 6274, 3690, 6394, 6722, 3910, 6478, 6806, 7015,
	4130, 4241, 4286, 4322, 4350, 1920, 3491, 6295, 3711, 6415, 6743, 3931, 6499, 6827, 7036, 4151, 6555, 6883, 7092, 7217,
	4371, 4461, 4506, 4542, 4570, 4591, 1986, 2529, 4651, 2650, 4660, 4705, 2760, 4668, 4713, 4749, 2859, 4675, 4720, 4756,
	4784, 2947, 4681, 4726, 4762, 4790, 4811, 3024, 2012, 2022, 2031, 2039, 2046, 2052, 90, 1661, 3366, 3586, 1727, 3411,
	6215, 3631, 3806, 3851, 1793, 3447, 6251, 3667, 6371, 6699, 3887, 4026, 4071, 4107, 1859, 3475, 6279, 3695, 6399, 6727,
	3915, 6483, 6811, 7020, 4135, 4246, 4291, 4327, 4355, 1925, 3496, 6300, 3716, 6420, 6748, 3936, 6504, 6832, 7041, 4156,
	6560, 6888, 7097, 7222, 4376, 4466, 4511, 4547, 4575, 4596, 1991, 3511, 6315, 3731, 6435, 6763, 3951, 6519, 6847, 7056,
	4171, 6575, 6903, 7112, 7237, 4391, 6610, 6938, 7147, 7272, 7341, 4611, 4686, 4731, 4767, 4795, 4816, 4831, 2057, 2540,
	4871, 2661, 4880, 4925, 2771, 4888, 4933, 4969, 2870, 4895, 4940, 4976, 5004, 2958, 4901, 4946, 4982, 5010, 5031, 3035,
	4906, 4951, 4987, 5015, 5036, 5051, 3101, 2078, 2088, 2097, 2105, 2112, 2118, 2123, 102, 1665, 3370, 3590, 1731, 3415,
	6219, 3635, 3810, 3855, 1797, 3451, 6255, 3671, 6375, 6703, 3891, 4030, 4075, 4111, 1863, 3479, 6283, 3699, 6403, 6731,
	3919, 6487, 6815, 7024, 4139, 4250, 4295, 4331, 4359, 1929, 3500, 6304, 3720, 6424, 6752, 3940, 6508, 6836, 7045, 4160,
	6564, 6892, 7101, 7226, 4380, 4470, 4515, 4551, 4579, 4600, 1995, 3515, 6319, 3735, 6439, 6767, 3955, 6523, 6851, 7060,
	4175, 6579, 6907, 7116, 7241, 4395, 6614, 6942, 7151, 7276, 7345, 4615, 4690, 4735, 4771, 4799, 4820, 4835, 2061, 1606,
	1606, 1606, 1606, 1606, 1606, 1606, 1606, 1606, 1606, 1606, 1606, 1606, 1606, 1606, 1606, 1606, 1606, 1606, 1606, 1606,
	1605, 1605, 1605, 1605, 1605, 1604, 1605, 1606, 1606, 1606, 1606, 1606, 1606, 1605, 1606, 2551, 5091, 2672, 5100, 5145,
	2782, 5108, 5153, 5189, 2881, 5115, 5160, 5196, 5224, 2969, 5121, 5166, 5202, 5230, 5251, 3046, 5126, 5171, 5207, 5235,
	5256, 5271, 3112, 1606, 1606, 1606, 1606, 1606, 1606, 1605, 1606, 2144, 2154, 2163, 2171, 2178, 2184, 2189, 1606, 114,
	174, 2555, 2676, 186, 2556, 5305, 2677, 2786, 2787, 198, 2557, 5306, 2678, 5315, 5360, 2788, 2885, 2886, 2887, 210,
	2558, 5307, 2679, 5316, 5361, 2789, 5324, 5369, 5405, 2888, 2973, 2974, 2975, 2976, 222, 2559, 5308, 2680, 5317, 5362,
	2790, 5325, 5370, 5406, 2889, 5332, 5377, 5413, 5441, 2977, 3050, 3051, 3052, 3053, 3054, 234, 2560, 5309, 2681, 5318,
	5363, 2791, 5326, 5371, 5407, 2890, 5333, 5378, 5414, 5442, 2978, 5339, 5384, 5420, 5448, 5469, 3055, 3116, 3117, 3118,
	3119, 3120, 3121, 246, 2561, 5310, 2682, 5319, 5364, 2792, 5327, 5372, 5408, 2891, 5334, 5379, 5415, 5443, 2979, 5340,
	5385, 5421, 5449, 5470, 3056, 5345, 5390, 5426, 5454, 5475, 5490, 3122, 3171, 3172, 3173, 3174, 3175, 3176, 3177, 258,
	2562, 5311, 2683, 5320, 5365, 2793, 5328, 5373, 5409, 2892, 5335, 5380, 5416, 5444, 2980, 5341, 5386, 5422, 5450, 5471,
	3057, 5346, 5391, 5427, 5455, 5476, 5491, 3123, 1606, 1606, 1606, 1606, 1606, 1606, 1605, 1606, 3215, 3216, 3217, 3218,
	3219, 3220, 3221, 1606, 270, 274, 2203, 275, 2204, 2214, 276, 2205, 2215, 2224, 277, 2206, 2216, 2225, 2233, 278,
	2207, 2217, 2226, 2234, 2241, 279, 2208, 2218, 2227, 2235, 2242, 2248, 280, 2209, 2219, 2228, 2236, 2243, 2249, 2254,
	281, 2210, 2220, 2229, 2237, 2244, 2250, 2255, 1606, 282, 118, 119, 120, 121, 122, 123, 124, 125, 126, 19,
	175, 2475, 187, 31, 175, 2566, 2687, 187, 2486, 2797, 2607, 199, 199, 43, 175, 2566, 2687, 187, 2567, 5525,
	2688, 2797, 2798, 199, 2497, 2896, 2618, 2896, 2897, 2728, 211, 211, 211, 55, 175, 2566, 2687, 187, 2567, 5525,
	2688, 2797, 2798, 199, 2568, 5526, 2689, 5535, 5580, 2799, 2896, 2897, 2898, 211, 2508, 2984, 2629, 2984, 2985, 2739,
	2984, 2985, 2986, 2838, 223, 223, 223, 223, 67, 175, 2566, 2687, 187, 2567, 5525, 2688, 2797, 2798, 199, 2568,
	5526, 2689, 5535, 5580, 2799, 2896, 2897, 2898, 211, 2569, 5527, 2690, 5536, 5581, 2800, 5544, 5589, 5625, 2899, 2984,
	2985, 2986, 2987, 223, 2519, 3061, 2640, 3061, 3062, 2750, 3061, 3062, 3063, 2849, 3061, 3062, 3063, 3064, 2937, 235,
	235, 235, 235, 235, 79, 175, 2566, 2687, 187, 2567, 5525, 2688, 2797, 2798, 199, 2568, 5526, 2689, 5535, 5580,
	2799, 2896, 2897, 2898, 211, 2569, 5527, 2690, 5536, 5581, 2800, 5544, 5589, 5625, 2899, 2984, 2985, 2986, 2987, 223,
	2570, 5528, 2691, 5537, 5582, 2801, 5545, 5590, 5626, 2900, 5552, 5597, 5633, 5661, 2988, 3061, 3062, 3063, 3064, 3065,
	235, 2530, 3127, 2651, 3127, 3128, 2761, 3127, 3128, 3129, 2860, 3127, 3128, 3129, 3130, 2948, 3127, 3128, 3129, 3130,
	3131, 3025, 247, 247, 247, 247, 247, 247, 91, 175, 2566, 2687, 187, 2567, 5525, 2688, 2797, 2798, 199, 2568,
	5526, 2689, 5535, 5580, 2799, 2896, 2897, 2898, 211, 2569, 5527, 2690, 5536, 5581, 2800, 5544, 5589, 5625, 2899, 2984,
	2985, 2986, 2987, 223, 2570, 5528, 2691, 5537, 5582, 2801, 5545, 5590, 5626, 2900, 5552, 5597, 5633, 5661, 2988, 3061,
	3062, 3063, 3064, 3065, 235, 2571, 5529, 2692, 5538, 5583, 2802, 5546, 5591, 5627, 2901, 5553, 5598, 5634, 5662, 2989,
	5559, 5604, 5640, 5668, 5689, 3066, 3127, 3128, 3129, 3130, 3131, 3132, 247, 2541, 3182, 2662, 3182, 3183, 2772, 3182,
	3183, 3184, 2871, 3182, 3183, 3184, 3185, 2959, 3182, 3183, 3184, 3185, 3186, 3036, 3182, 3183, 3184, 3185, 3186, 3187,
	3102, 259, 259, 259, 259, 259, 259, 259, 103, 175, 2566, 2687, 187, 2567, 5525, 2688, 2797, 2798, 199, 2568,
	5526, 2689, 5535, 5580, 2799, 2896, 2897, 2898, 211, 2569, 5527, 2690, 5536, 5581, 2800, 5544, 5589, 5625, 2899, 2984,
	2985, 2986, 2987, 223, 2570, 5528, 2691, 5537, 5582, 2801, 5545, 5590, 5626, 2900, 5552, 5597, 5633, 5661, 2988, 3061,
	3062, 3063, 3064, 3065, 235, 2571, 5529, 2692, 5538, 5583, 2802, 5546, 5591, 5627, 2901, 5553, 5598, 5634, 5662, 2989,
	5559, 5604, 5640, 5668, 5689, 3066, 3127, 3128, 3129, 3130, 3131, 3132, 247, 2572, 5530, 2693, 5539, 5584, 2803, 5547,
	5592, 5628, 2902, 5554, 5599, 5635, 5663, 2990, 5560, 5605, 5641, 5669, 5690, 3067, 5565, 5610, 5646, 5674, 5695, 5710,
	3133, 3182, 3183, 3184, 3185, 3186, 3187, 3188, 259, 2552, 3226, 2673, 3226, 3227, 2783, 3226, 3227, 3228, 2882, 3226,
	3227, 3228, 3229, 2970, 3226, 3227, 3228, 3229, 3230, 3047, 3226, 3227, 3228, 3229, 3230, 3231, 3113, 3226, 3227, 3228,
	3229, 3230, 3231, 3232, 3168, 271, 271, 271, 271, 271, 271, 271, 271, 115, 175, 2566, 2687, 187, 2567, 5525,
	2688, 2797, 2798, 199, 2568, 5526, 2689, 5535, 5580, 2799, 2896, 2897, 2898, 211, 2569, 5527, 2690, 5536, 5581, 2800,
	5544, 5589, 5625, 2899, 2984, 2985, 2986, 2987, 223, 2570, 5528, 2691, 5537, 5582, 2801, 5545, 5590, 5626, 2900, 5552,
	5597, 5633, 5661, 2988, 3061, 3062, 3063, 3064, 3065, 235, 2571, 5529, 2692, 5538, 5583, 2802, 5546, 5591, 5627, 2901,
	5553, 5598, 5634, 5662, 2989, 5559, 5604, 5640, 5668, 5689, 3066, 3127, 3128, 3129, 3130, 3131, 3132, 247, 2572, 5530,
	2693, 5539, 5584, 2803, 5547, 5592, 5628, 2902, 5554, 5599, 5635, 5663, 2990, 5560, 5605, 5641, 5669, 5690, 3067, 5565,
	5610, 5646, 5674, 5695, 5710, 3133, 3182, 3183, 3184, 3185, 3186, 3187, 3188, 259, 2573, 5531, 2694, 5540, 5585, 2804,
	5548, 5593, 5629, 2903, 5555, 5600, 5636, 5664, 2991, 5561, 5606, 5642, 5670, 5691, 3068, 5566, 5611, 5647, 5675, 5696,
	5711, 3134, 1606, 1606, 1606, 1606, 1606, 1606, 1605, 1606, 3226, 3227, 3228, 3229, 3230, 3231, 3232, 1606, 271, 2563,
	3259, 2684, 3259, 3260, 2794, 3259, 3260, 3261, 2893, 3259, 3260, 3261, 3262, 2981, 3259, 3260, 3261, 3262, 3263, 3058,
	3259, 3260, 3261, 3262, 3263, 3264, 3124, 3259, 3260, 3261, 3262, 3263, 3264, 3265, 3179, 3259, 3260, 3261, 3262, 3263,
	3264, 3265, 1606, 3223, 283, 283, 283, 283, 283, 283, 283, 283, 283, 127, 175, 286, 287, 187, 286, 2269,
	287, 288, 288, 199, 286, 2269, 287, 2270, 2280, 288, 289, 289, 289, 211, 286, 2269, 287, 2270, 2280, 288,
	2271, 2281, 2290, 289, 290, 290, 290, 290, 223, 286, 2269, 287, 2270, 2280, 288, 2271, 2281, 2290, 289, 2272,
	2282, 2291, 2299, 290, 291, 291, 291, 291, 291, 235, 286, 2269, 287, 2270, 2280, 288, 2271, 2281, 2290, 289,
	2272, 2282, 2291, 2299, 290, 2273, 2283, 2292, 2300, 2307, 291, 292, 292, 292, 292, 292, 292, 247, 286, 2269,
	287, 2270, 2280, 288, 2271, 2281, 2290, 289, 2272, 2282, 2291, 2299, 290, 2273, 2283, 2292, 2300, 2307, 291, 2274,
	2284, 2293, 2301, 2308, 2314, 292, 293, 293, 293, 293, 293, 293, 293, 259, 286, 2269, 287, 2270, 2280, 288,
	2271, 2281, 2290, 289, 2272, 2282, 2291, 2299, 290, 2273, 2283, 2292, 2300, 2307, 291, 2274, 2284, 2293, 2301, 2308,
	2314, 292, 2275, 2285, 2294, 2302, 2309, 2315, 2320, 293, 294, 294, 294, 294, 294, 294, 294, 294, 271, 286,
	2269, 287, 2270, 2280, 288, 2271, 2281, 2290, 289, 2272, 2282, 2291, 2299, 290, 2273, 2283, 2292, 2300, 2307, 291,
	2274, 2284, 2293, 2301, 2308, 2314, 292, 2275, 2285, 2294, 2302, 2309, 2315, 2320, 293, 2276, 2286, 2295, 2303, 2310,
	2316, 2321, 1606, 294, 295, 295, 295, 295, 295, 295, 295, 295, 295, 283, 130, 130, 131, 130, 131, 132,
	130, 131, 132, 133, 130, 131, 132, 133, 134, 130, 131, 132, 133, 134, 135, 130, 131, 132, 133, 134,
	135, 136, 130, 131, 132, 133, 134, 135, 136, 137, 130, 131, 132, 133, 134, 135, 136, 137, 138, 130,
	131, 132, 133, 134, 135, 136, 137, 138, 139, 10, 166, 178, 22, 11, 176, 2467, 188, 23, 167, 2478,
	2599, 179, 190, 200, 191, 34, 35, 12, 176, 2468, 188, 24, 176, 2577, 2698, 188, 2479, 2808, 2600, 200,
	200, 36, 168, 2489, 2610, 180, 2490, 2907, 2611, 2720, 2721, 192, 202, 212, 203, 212, 212, 204, 46, 47,
	48, 13, 176, 2469, 188, 25, 176, 2577, 2698, 188, 2480, 2808, 2601, 200, 200, 37, 176, 2577, 2698, 188,
	2578, 1599, 2699, 2808, 2809, 200, 2491, 2907, 2612, 2907, 2908, 2722, 212, 212, 212, 49, 169, 2500, 2621, 181,
	2501, 2995, 2622, 2731, 2732, 193, 2502, 2995, 2623, 2995, 2996, 2733, 2830, 2831, 2832, 205, 214, 224, 215, 224,
	224, 216, 224, 224, 224, 217, 58, 59, 60, 61, 14, 176, 2470, 188, 26, 176, 2577, 2698, 188, 2481,
	2808, 2602, 200, 200, 38, 176, 2577, 2698, 188, 2578, 5745, 2699, 2808, 2809, 200, 2492, 2907, 2613, 2907, 2908,
	2723, 212, 212, 212, 50, 176, 2577, 2698, 188, 2578, 5745, 2699, 2808, 2809, 200, 2579, 5746, 2700, 5755, 1600,
	2810, 2907, 2908, 2909, 212, 2503, 2995, 2624, 2995, 2996, 2734, 2995, 2996, 2997, 2833, 224, 224, 224, 224, 62,
	170, 2511, 2632, 182, 2512, 3072, 2633, 2742, 2743, 194, 2513, 3072, 2634, 3072, 3073, 2744, 2841, 2842, 2843, 206,
	2514, 3072, 2635, 3072, 3073, 2745, 3072, 3073, 3074, 2844, 2929, 2930, 2931, 2932, 218, 226, 236, 227, 236, 236,
	228, 236, 236, 236, 229, 236, 236, 236, 236, 230, 70, 71, 72, 73, 74, 15, 176, 2471, 188, 27,
	176, 2577, 2698, 188, 2482, 2808, 2603, 200, 200, 39, 176, 2577, 2698, 188, 2578, 5745, 2699, 2808, 2809, 200,
	2493, 2907, 2614, 2907, 2908, 2724, 212, 212, 212, 51, 176, 2577, 2698, 188, 2578, 5745, 2699, 2808, 2809, 200,
	2579, 5746, 2700, 5755, 5800, 2810, 2907, 2908, 2909, 212, 2504, 2995, 2625, 2995, 2996, 2735, 2995, 2996, 2997, 2834,
	224, 224, 224, 224, 63, 176, 2577, 2698, 188, 2578, 5745, 2699, 2808, 2809, 200, 2579, 5746, 2700, 5755, 5800,
	2810, 2907, 2908, 2909, 212, 2580, 5747, 2701, 5756, 5801, 2811, 5764, 5809, 1601, 2910, 2995, 2996, 2997, 2998, 224,
	2515, 3072, 2636, 3072, 3073, 2746, 3072, 3073, 3074, 2845, 3072, 3073, 3074, 3075, 2933, 236, 236, 236, 236, 236,
	75, 171, 2522, 2643, 183, 2523, 3138, 2644, 2753, 2754, 195, 2524, 3138, 2645, 3138, 3139, 2755, 2852, 2853, 2854,
	207, 2525, 3138, 2646, 3138, 3139, 2756, 3138, 3139, 3140, 2855, 2940, 2941, 2942, 2943, 219, 2526, 3138, 2647, 3138,
	3139, 2757, 3138, 3139, 3140, 2856, 3138, 3139, 3140, 3141, 2944, 3017, 3018, 3019, 3020, 3021, 231, 238, 248, 239,
	248, 248, 240, 248, 248, 248, 241, 248, 248, 248, 248, 242, 248, 248, 248, 248, 248, 243, 82, 83,
	84, 85, 86, 87, 16, 176, 2472, 188, 28, 176, 2577, 2698, 188, 2483, 2808, 2604, 200, 200, 40, 176,
	2577, 2698, 188, 2578, 5745, 2699, 2808, 2809, 200, 2494, 2907, 2615, 2907, 2908, 2725, 212, 212, 212, 52, 176,
	2577, 2698, 188, 2578, 5745, 2699, 2808, 2809, 200, 2579, 5746, 2700, 5755, 5800, 2810, 2907, 2908, 2909, 212, 2505,
	2995, 2626, 2995, 2996, 2736, 2995, 2996, 2997, 2835, 224, 224, 224, 224, 64, 176, 2577, 2698, 188, 2578, 5745,
	2699, 2808, 2809, 200, 2579, 5746, 2700, 5755, 5800, 2810, 2907, 2908, 2909, 212, 2580, 5747, 2701, 5756, 5801, 2811,
	5764, 5809, 5845, 2910, 2995, 2996, 2997, 2998, 224, 2516, 3072, 2637, 3072, 3073, 2747, 3072, 3073, 3074, 2846, 3072,
	3073, 3074, 3075, 2934, 236, 236, 236, 236, 236, 76, 176, 2577, 2698, 188, 2578, 5745, 2699, 2808, 2809, 200,
	2579, 5746, 2700, 5755, 5800, 2810, 2907, 2908, 2909, 212, 2580, 5747, 2701, 5756, 5801, 2811, 5764, 5809, 5845, 2910,
	2995, 2996, 2997, 2998, 224, 2581, 5748, 2702, 5757, 5802, 2812, 5765, 5810, 5846, 2911, 5772, 5817, 5853, 1602, 2999,
	3072, 3073, 3074, 3075, 3076, 236, 2527, 3138, 2648, 3138, 3139, 2758, 3138, 3139, 3140, 2857, 3138, 3139, 3140, 3141,
	2945, 3138, 3139, 3140, 3141, 3142, 3022, 248, 248, 248, 248, 248, 248, 88, 172, 2533, 2654, 184, 2534, 3193,
	2655, 2764, 2765, 196, 2535, 3193, 2656, 3193, 3194, 2766, 2863, 2864, 2865, 208, 2536, 3193, 2657, 3193, 3194, 2767,
	3193, 3194, 3195, 2866, 2951, 2952, 2953, 2954, 220, 2537, 3193, 2658, 3193, 3194, 2768, 3193, 3194, 3195, 2867, 3193,
	3194, 3195, 3196, 2955, 3028, 3029, 3030, 3031, 3032, 232, 2538, 3193, 2659, 3193, 3194, 2769, 3193, 3194, 3195, 2868,
	3193, 3194, 3195, 3196, 2956, 3193, 3194, 3195, 3196, 3197, 3033, 3094, 3095, 3096, 3097, 3098, 3099, 244, 250, 260,
	251, 260, 260, 252, 260, 260, 260, 253, 260, 260, 260, 260, 254, 260, 260, 260, 260, 260, 255, 260,
	260, 260, 260, 260, 260, 256, 94, 95, 96, 97, 98, 99, 100, 17, 176, 2473, 188, 29, 176, 2577,
	2698, 188, 2484, 2808, 2605, 200, 200, 41, 176, 2577, 2698, 188, 2578, 5745, 2699, 2808, 2809, 200, 2495, 2907,
	2616, 2907, 2908, 2726, 212, 212, 212, 53, 176, 2577, 2698, 188, 2578, 5745, 2699, 2808, 2809, 200, 2579, 5746,
	2700, 5755, 5800, 2810, 2907, 2908, 2909, 212, 2506, 2995, 2627, 2995, 2996, 2737, 2995, 2996, 2997, 2836, 224, 224,
	224, 224, 65, 176, 2577, 2698, 188, 2578, 5745, 2699, 2808, 2809, 200, 2579, 5746, 2700, 5755, 5800, 2810, 2907,
	2908, 2909, 212, 2580, 5747, 2701, 5756, 5801, 2811, 5764, 5809, 5845, 2910, 2995, 2996, 2997, 2998, 224, 2517, 3072,
	2638, 3072, 3073, 2748, 3072, 3073, 3074, 2847, 3072, 3073, 3074, 3075, 2935, 236, 236, 236, 236, 236, 77, 176,
	2577, 2698, 188, 2578, 5745, 2699, 2808, 2809, 200, 2579, 5746, 2700, 5755, 5800, 2810, 2907, 2908, 2909, 212, 2580,
	5747, 2701, 5756, 5801, 2811, 5764, 5809, 5845, 2910, 2995, 2996, 2997, 2998, 224, 2581, 5748, 2702, 5757, 5802, 2812,
	5765, 5810, 5846, 2911, 5772, 5817, 5853, 5881, 2999, 3072, 3073, 3074, 3075, 3076, 236, 2528, 3138, 2649, 3138, 3139,
	2759, 3138, 3139, 3140, 2858, 3138, 3139, 3140, 3141, 2946, 3138, 3139, 3140, 3141, 3142, 3023, 248, 248, 248, 248,
	248, 248, 89, 176, 2577, 2698, 188, 2578, 5745, 2699, 2808, 2809, 200, 2579, 5746, 2700, 5755, 5800, 2810, 2907,
	2908, 2909, 212, 2580, 5747, 2701, 5756, 5801, 2811, 5764, 5809, 5845, 2910, 2995, 2996, 2997, 2998, 224, 2581, 5748,
	2702, 5757, 5802, 2812, 5765, 5810, 5846, 2911, 5772, 5817, 5853, 5881, 2999, 3072, 3073, 3074, 3075, 3076, 236, 2582,
	5749, 2703, 5758, 5803, 2813, 5766, 5811, 5847, 2912, 5773, 5818, 5854, 5882, 3000, 5779, 5824, 5860, 5888, 1603, 3077,
	3138, 3139, 3140, 3141, 3142, 3143, 248, 2539, 3193, 2660, 3193, 3194, 2770, 3193, 3194, 3195, 2869, 3193, 3194, 3195,
	3196, 2957, 3193, 3194, 3195, 3196, 3197, 3034, 3193, 3194, 3195, 3196, 3197, 3198, 3100, 260, 260, 260, 260, 260,
	260, 260, 101, 173, 2544, 2665, 185, 2545, 3237, 2666, 2775, 2776, 197, 2546, 3237, 2667, 3237, 3238, 2777, 2874,
	2875, 2876, 209, 2547, 3237, 2668, 3237, 3238, 2778, 3237, 3238, 3239, 2877, 2962, 2963, 2964, 2965, 221, 2548, 3237,
	2669, 3237, 3238, 2779, 3237, 3238, 3239, 2878, 3237, 3238, 3239, 3240, 2966, 3039, 3040, 3041, 3042, 3043, 233, 2549,
	3237, 2670, 3237, 3238, 2780, 3237, 3238, 3239, 2879, 3237, 3238, 3239, 3240, 2967, 3237, 3238, 3239, 3240, 3241, 3044,
	3105, 3106, 3107, 3108, 3109, 3110, 245, 2550, 3237, 2671, 3237, 3238, 2781, 3237, 3238, 3239, 2880, 3237, 3238, 3239,
	3240, 2968, 3237, 3238, 3239, 3240, 3241, 3045, 3237, 3238, 3239, 3240, 3241, 3242, 3111, 3160, 3161, 3162, 3163, 3164,
	3165, 3166, 257, 262, 272, 263, 272, 272, 264, 272, 272, 272, 265, 272, 272, 272, 272, 266, 272, 272,
	272, 272, 272, 267, 272, 272, 272, 272, 272, 272, 268, 272, 272, 272, 272, 272, 272, 272, 269, 106,
	107, 108, 109, 110, 111, 112, 113, 18, 176, 2474, 188, 30, 176, 2577, 2698, 188, 2485, 2808, 2606, 200,
	200, 42, 176, 2577, 2698, 188, 2578, 5745, 2699, 2808, 2809, 200, 2496, 2907, 2617, 2907, 2908, 2727, 212, 212,
	212, 54, 176, 2577, 2698, 188, 2578, 5745, 2699, 2808, 2809, 200, 2579, 5746, 2700, 5755, 5800, 2810, 2907, 2908,
	2909, 212, 2507, 2995, 2628, 2995, 2996, 2738, 2995, 2996, 2997, 2837, 224, 224, 224, 224, 66, 176, 2577, 2698,
	188, 2578, 5745, 2699, 2808, 2809, 200, 2579, 5746, 2700, 5755, 5800, 2810, 2907, 2908, 2909, 212, 2580, 5747, 2701,
	5756, 5801, 2811, 5764, 5809, 5845, 2910, 2995, 2996, 2997, 2998, 224, 2518, 3072, 2639, 3072, 3073, 2749, 3072, 3073,
	3074, 2848, 3072, 3073, 3074, 3075, 2936, 236, 236, 236, 236, 236, 78, 176, 2577, 2698, 188, 2578, 5745, 2699,
	2808, 2809, 200, 2579, 5746, 2700, 5755, 5800, 2810, 2907, 2908, 2909, 212, 2580, 5747, 2701, 5756, 5801, 2811, 5764,
	5809, 5845, 2910, 2995, 2996, 2997, 2998, 224, 2581, 5748, 2702, 5757, 5802, 2812, 5765, 5810, 5846, 2911, 5772, 5817,
	5853, 5881, 2999, 3072, 3073, 3074, 3075, 3076, 236, 2529, 3138, 2650, 3138, 3139, 2760, 3138, 3139, 3140, 2859, 3138,
	3139, 3140, 3141, 2947, 3138, 3139, 3140, 3141, 3142, 3024, 248, 248, 248, 248, 248, 248, 90, 176, 2577, 2698,
	188, 2578, 5745, 2699, 2808, 2809, 200, 2579, 5746, 2700, 5755, 5800, 2810, 2907, 2908, 2909, 212, 2580, 5747, 2701,
	5756, 5801, 2811, 5764, 5809, 5845, 2910, 2995, 2996, 2997, 2998, 224, 2581, 5748, 2702, 5757, 5802, 2812, 5765, 5810,
	5846, 2911, 5772, 5817, 5853, 5881, 2999, 3072, 3073, 3074, 3075, 3076, 236, 2582, 5749, 2703, 5758, 5803, 2813, 5766,
	5811, 5847, 2912, 5773, 5818, 5854, 5882, 3000, 5779, 5824, 5860, 5888, 5909, 3077, 3138, 3139, 3140, 3141, 3142, 3143,
	248, 2540, 3193, 2661, 3193, 3194, 2771, 3193, 3194, 3195, 2870, 3193, 3194, 3195, 3196, 2958, 3193, 3194, 3195, 3196,
	3197, 3035, 3193, 3194, 3195, 3196, 3197, 3198, 3101, 260, 260, 260, 260, 260, 260, 260, 102, 176, 2577, 2698,
	188, 2578, 5745, 2699, 2808, 2809, 200, 2579, 5746, 2700, 5755, 5800, 2810, 2907, 2908, 2909, 212, 2580, 5747, 2701,
	5756, 5801, 2811, 5764, 5809, 5845, 2910, 2995, 2996, 2997, 2998, 224, 2581, 5748, 2702, 5757, 5802, 2812, 5765, 5810,
	5846, 2911, 5772, 5817, 5853, 5881, 2999, 3072, 3073, 3074, 3075, 3076, 236, 2582, 5749, 2703, 5758, 5803, 2813, 5766,
	5811, 5847, 2912, 5773, 5818, 5854, 5882, 3000, 5779, 5824, 5860, 5888, 5909, 3077, 3138, 3139, 3140, 3141, 3142, 3143,
	248, 2583, 5750, 2704, 5759, 5804, 2814, 5767, 5812, 5848, 2913, 5774, 5819, 5855, 5883, 3001, 5780, 5825, 5861, 5889,
	5910, 3078, 5785, 5830, 5866, 5894, 5915, 1604, 3144, 3193, 3194, 3195, 3196, 3197, 3198, 3199, 260, 2551, 3237, 2672,
	3237, 3238, 2782, 3237, 3238, 3239, 2881, 3237, 3238, 3239, 3240, 2969, 3237, 3238, 3239, 3240, 3241, 3046, 3237, 3238,
	3239, 3240, 3241, 3242, 3112, 3237, 3238, 3239, 3240, 3241, 3242, 3243, 3167, 272, 272, 272, 272, 272, 272, 272,
	272, 114, 174, 2555, 2676, 186, 2556, 3270, 2677, 2786, 2787, 198, 2557, 3270, 2678, 3270, 3271, 2788, 2885, 2886,
	2887, 210, 2558, 3270, 2679, 3270, 3271, 2789, 3270, 3271, 3272, 2888, 2973, 2974, 2975, 2976, 222, 2559, 3270, 2680,
	3270, 3271, 2790, 3270, 3271, 3272, 2889, 3270, 3271, 3272, 3273, 2977, 3050, 3051, 3052, 3053, 3054, 234, 2560, 3270,
	2681, 3270, 3271, 2791, 3270, 3271, 3272, 2890, 3270, 3271, 3272, 3273, 2978, 3270, 3271, 3272, 3273, 3274, 3055, 3116,
	3117, 3118, 3119, 3120, 3121, 246, 2561, 3270, 2682, 3270, 3271, 2792, 3270, 3271, 3272, 2891, 3270, 3271, 3272, 3273,
	2979, 3270, 3271, 3272, 3273, 3274, 3056, 3270, 3271, 3272, 3273, 3274, 3275, 3122, 3171, 3172, 3173, 3174, 3175, 3176,
	3177, 258, 2562, 3270, 2683, 3270, 3271, 2793, 3270, 3271, 3272, 2892, 3270, 3271, 3272, 3273, 2980, 3270, 3271, 3272,
	3273, 3274, 3057, 3270, 3271, 3272, 3273, 3274, 3275, 3123, 3270, 3271, 3272, 3273, 3274, 3275, 3276, 3178, 3215, 3216,
	3217, 3218, 3219, 3220, 3221, 3222, 270, 274, 284, 275, 284, 284, 276, 284, 284, 284, 277, 284, 284, 284,
	284, 278, 284, 284, 284, 284, 284, 279, 284, 284, 284, 284, 284, 284, 280, 284, 284, 284, 284, 284,
	284, 284, 281, 284, 284, 284, 284, 284, 284, 284, 284, 282, 118, 119, 120, 121, 122, 123, 124, 125,
	126, 19, 176, 2475, 188, 31, 176, 2577, 2698, 188, 2486, 2808, 2607, 200, 200, 43, 176, 2577, 2698, 188,
	2578, 5745, 2699, 2808, 2809, 200, 2497, 2907, 2618, 2907, 2908, 2728, 212, 212, 212, 55, 176, 2577, 2698, 188,
	2578, 5745, 2699, 2808, 2809, 200, 2579, 5746, 2700, 5755, 5800, 2810, 2907, 2908, 2909, 212, 2508, 2995, 2629, 2995,
	2996, 2739, 2995, 2996, 2997, 2838, 224, 224, 224, 224, 67, 176, 2577, 2698, 188, 2578, 5745, 2699, 2808, 2809,
	200, 2579, 5746, 2700, 5755, 5800, 2810, 2907, 2908, 2909, 212, 2580, 5747, 2701, 5756, 5801, 2811, 5764, 5809, 5845,
	2910, 2995, 2996, 2997, 2998, 224, 2519, 3072, 2640, 3072, 3073, 2750, 3072, 3073, 3074, 2849, 3072, 3073, 3074, 3075,
	2937, 236, 236, 236, 236, 236, 79, 176, 2577, 2698, 188, 2578, 5745, 2699, 2808, 2809, 200, 2579, 5746, 2700,
	5755, 5800, 2810, 2907, 2908, 2909, 212, 2580, 5747, 2701, 5756, 5801, 2811, 5764, 5809, 5845, 2910, 2995, 2996, 2997,
	2998, 224, 2581, 5748, 2702, 5757, 5802, 2812, 5765, 5810, 5846, 2911, 5772, 5817, 5853, 5881, 2999, 3072, 3073, 3074,
	3075, 3076, 236, 2530, 3138, 2651, 3138, 3139, 2761, 3138, 3139, 3140, 2860, 3138, 3139, 3140, 3141, 2948, 3138, 3139,
	3140, 3141, 3142, 3025, 248, 248, 248, 248, 248, 248, 91, 176, 2577, 2698, 188, 2578, 5745, 2699, 2808, 2809,
	200, 2579, 5746, 2700, 5755, 5800, 2810, 2907, 2908, 2909, 212, 2580, 5747, 2701, 5756, 5801, 2811, 5764, 5809, 5845,
	2910, 2995, 2996, 2997, 2998, 224, 2581, 5748, 2702, 5757, 5802, 2812, 5765, 5810, 5846, 2911, 5772, 5817, 5853, 5881,
	2999, 3072, 3073, 3074, 3075, 3076, 236, 2582, 5749, 2703, 5758, 5803, 2813, 5766, 5811, 5847, 2912, 5773, 5818, 5854,
	5882, 3000, 5779, 5824, 5860, 5888, 5909, 3077, 3138, 3139, 3140, 3141, 3142, 3143, 248, 2541, 3193, 2662, 3193, 3194,
	2772, 3193, 3194, 3195, 2871, 3193, 3194, 3195, 3196, 2959, 3193, 3194, 3195, 3196, 3197, 3036, 3193, 3194, 3195, 3196,
	3197, 3198, 3102, 260, 260, 260, 260, 260, 260, 260, 103, 176, 2577, 2698, 188, 2578, 5745, 2699, 2808, 2809,
	200, 2579, 5746, 2700, 5755, 5800, 2810, 2907, 2908, 2909, 212, 2580, 5747, 2701, 5756, 5801, 2811, 5764, 5809, 5845,
	2910, 2995, 2996, 2997, 2998, 224, 2581, 5748, 2702, 5757, 5802, 2812, 5765, 5810, 5846, 2911, 5772, 5817, 5853, 5881,
	2999, 3072, 3073, 3074, 3075, 3076, 236, 2582, 5749, 2703, 5758, 5803, 2813, 5766, 5811, 5847, 2912, 5773, 5818, 5854,
	5882, 3000, 5779, 5824, 5860, 5888, 5909, 3077, 3138, 3139, 3140, 3141, 3142, 3143, 248, 2583, 5750, 2704, 5759, 5804,
	2814, 5767, 5812, 5848, 2913, 5774, 5819, 5855, 5883, 3001, 5780, 5825, 5861, 5889, 5910, 3078, 5785, 5830, 5866, 5894,
	5915, 5930, 3144, 3193, 3194, 3195, 3196, 3197, 3198, 3199, 260, 2552, 3237, 2673, 3237, 3238, 2783, 3237, 3238, 3239,
	2882, 3237, 3238, 3239, 3240, 2970, 3237, 3238, 3239, 3240, 3241, 3047, 3237, 3238, 3239, 3240, 3241, 3242, 3113, 3237,
	3238, 3239, 3240, 3241, 3242, 3243, 3168, 272, 272, 272, 272, 272, 272, 272, 272, 115, 176, 2577, 2698, 188,
	2578, 5745, 2699, 2808, 2809, 200, 2579, 5746, 2700, 5755, 5800, 2810, 2907, 2908, 2909, 212, 2580, 5747, 2701, 5756,
	5801, 2811, 5764, 5809, 5845, 2910, 2995, 2996, 2997, 2998, 224, 2581, 5748, 2702, 5757, 5802, 2812, 5765, 5810, 5846,
	2911, 5772, 5817, 5853, 5881, 2999, 3072, 3073, 3074, 3075, 3076, 236, 2582, 5749, 2703, 5758, 5803, 2813, 5766, 5811,
	5847, 2912, 5773, 5818, 5854, 5882, 3000, 5779, 5824, 5860, 5888, 5909, 3077, 3138, 3139, 3140, 3141, 3142, 3143, 248,
	2583, 5750, 2704, 5759, 5804, 2814, 5767, 5812, 5848, 2913, 5774, 5819, 5855, 5883, 3001, 5780, 5825, 5861, 5889, 5910,
	3078, 5785, 5830, 5866, 5894, 5915, 5930, 3144, 3193, 3194, 3195, 3196, 3197, 3198, 3199, 260, 2584, 5751, 2705, 5760,
	5805, 2815, 5768, 5813, 5849, 2914, 5775, 5820, 5856, 5884, 3002, 5781, 5826, 5862, 5890, 5911, 3079, 5786, 5831, 5867,
	5895, 5916, 5931, 3145, 1606, 1606, 1606, 1606, 1606, 1606, 1605, 1606, 3237, 3238, 3239, 3240, 3241, 3242, 3243, 1606,
	272, 2563, 3270, 2684, 3270, 3271, 2794, 3270, 3271, 3272, 2893, 3270, 3271, 3272, 3273, 2981, 3270, 3271, 3272, 3273,
	3274, 3058, 3270, 3271, 3272, 3273, 3274, 3275, 3124, 3270, 3271, 3272, 3273, 3274, 3275, 3276, 3179, 3270, 3271, 3272,
	3273, 3274, 3275, 3276, 1606, 3223, 284, 284, 284, 284, 284, 284, 284, 284, 284, 127, 175, 2566, 2687, 187,
	2567, 3292, 2688, 2797, 2798, 199, 2568, 3292, 2689, 3292, 3293, 2799, 2896, 2897, 2898, 211, 2569, 3292, 2690, 3292,
	3293, 2800, 3292, 3293, 3294, 2899, 2984, 2985, 2986, 2987, 223, 2570, 3292, 2691, 3292, 3293, 2801, 3292, 3293, 3294,
	2900, 3292, 3293, 3294, 3295, 2988, 3061, 3062, 3063, 3064, 3065, 235, 2571, 3292, 2692, 3292, 3293, 2802, 3292, 3293,
	3294, 2901, 3292, 3293, 3294, 3295, 2989, 3292, 3293, 3294, 3295, 3296, 3066, 3127, 3128, 3129, 3130, 3131, 3132, 247,
	2572, 3292, 2693, 3292, 3293, 2803, 3292, 3293, 3294, 2902, 3292, 3293, 3294, 3295, 2990, 3292, 3293, 3294, 3295, 3296,
	3067, 3292, 3293, 3294, 3295, 3296, 3297, 3133, 3182, 3183, 3184, 3185, 3186, 3187, 3188, 259, 2573, 3292, 2694, 3292,
	3293, 2804, 3292, 3293, 3294, 2903, 3292, 3293, 3294, 3295, 2991, 3292, 3293, 3294, 3295, 3296, 3068, 3292, 3293, 3294,
	3295, 3296, 3297, 3134, 3292, 3293, 3294, 3295, 3296, 3297, 3298, 3189, 3226, 3227, 3228, 3229, 3230, 3231, 3232, 3233,
	271, 2574, 3292, 2695, 3292, 3293, 2805, 3292, 3293, 3294, 2904, 3292, 3293, 3294, 3295, 2992, 3292, 3293, 3294, 3295,
	3296, 3069, 3292, 3293, 3294, 3295, 3296, 3297, 3135, 3292, 3293, 3294, 3295, 3296, 3297, 3298, 3190, 3292, 3293, 3294,
	3295, 3296, 3297, 3298, 1606, 3234, 3259, 3260, 3261, 3262, 3263, 3264, 3265, 3266, 3267, 283, 286, 296, 287, 296,
	296, 288, 296, 296, 296, 289, 296, 296, 296, 296, 290, 296, 296, 296, 296, 296, 291, 296, 296, 296,
	296, 296, 296, 292, 296, 296, 296, 296, 296, 296, 296, 293, 296, 296, 296, 296, 296, 296, 296, 296,
	294, 296, 296, 296, 296, 296, 296, 296, 296, 296, 295, 130, 131, 132, 133, 134, 135, 136, 137, 138,
	139, 20, 176, 298, 188, 32, 176, 298, 299, 188, 298, 300, 299, 200, 200, 44, 176, 298, 299, 188,
	298, 2335, 299, 300, 300, 200, 298, 301, 299, 301, 301, 300, 212, 212, 212, 56, 176, 298, 299, 188,
	298, 2335, 299, 300, 300, 200, 298, 2335, 299, 2336, 2346, 300, 301, 301, 301, 212, 298, 302, 299, 302,
	302, 300, 302, 302, 302, 301, 224, 224, 224, 224, 68, 176, 298, 299, 188, 298, 2335, 299, 300, 300,
	200, 298, 2335, 299, 2336, 2346, 300, 301, 301, 301, 212, 298, 2335, 299, 2336, 2346, 300, 2337, 2347, 2356,
	301, 302, 302, 302, 302, 224, 298, 303, 299, 303, 303, 300, 303, 303, 303, 301, 303, 303, 303, 303,
	302, 236, 236, 236, 236, 236, 80, 176, 298, 299, 188, 298, 2335, 299, 300, 300, 200, 298, 2335, 299,
	2336, 2346, 300, 301, 301, 301, 212, 298, 2335, 299, 2336, 2346, 300, 2337, 2347, 2356, 301, 302, 302, 302,
	302, 224, 298, 2335, 299, 2336, 2346, 300, 2337, 2347, 2356, 301, 2338, 2348, 2357, 2365, 302, 303, 303, 303,
	303, 303, 236, 298, 304, 299, 304, 304, 300, 304, 304, 304, 301, 304, 304, 304, 304, 302, 304, 304,
	304, 304, 304, 303, 248, 248, 248, 248, 248, 248, 92, 176, 298, 299, 188, 298, 2335, 299, 300, 300,
	200, 298, 2335, 299, 2336, 2346, 300, 301, 301, 301, 212, 298, 2335, 299, 2336, 2346, 300, 2337, 2347, 2356,
	301, 302, 302, 302, 302, 224, 298, 2335, 299, 2336, 2346, 300, 2337, 2347, 2356, 301, 2338, 2348, 2357, 2365,
	302, 303, 303, 303, 303, 303, 236, 298, 2335, 299, 2336, 2346, 300, 2337, 2347, 2356, 301, 2338, 2348, 2357,
	2365, 302, 2339, 2349, 2358, 2366, 2373, 303, 304, 304, 304, 304, 304, 304, 248, 298, 305, 299, 305, 305,
	300, 305, 305, 305, 301, 305, 305, 305, 305, 302, 305, 305, 305, 305, 305, 303, 305, 305, 305, 305,
	305, 305, 304, 260, 260, 260, 260, 260, 260, 260, 104, 176, 298, 299, 188, 298, 2335, 299, 300, 300,
	200, 298, 2335, 299, 2336, 2346, 300, 301, 301, 301, 212, 298, 2335, 299, 2336, 2346, 300, 2337, 2347, 2356,
	301, 302, 302, 302, 302, 224, 298, 2335, 299, 2336, 2346, 300, 2337, 2347, 2356, 301, 2338, 2348, 2357, 2365,
	302, 303, 303, 303, 303, 303, 236, 298, 2335, 299, 2336, 2346, 300, 2337, 2347, 2356, 301, 2338, 2348, 2357,
	2365, 302, 2339, 2349, 2358, 2366, 2373, 303, 304, 304, 304, 304, 304, 304, 248, 298, 2335, 299, 2336, 2346,
	300, 2337, 2347, 2356, 301, 2338, 2348, 2357, 2365, 302, 2339, 2349, 2358, 2366, 2373, 303, 2340, 2350, 2359, 2367,
	2374, 2380, 304, 305, 305, 305, 305, 305, 305, 305, 260, 298, 306, 299, 306, 306, 300, 306, 306, 306,
	301, 306, 306, 306, 306, 302, 306, 306, 306, 306, 306, 303, 306, 306, 306, 306, 306, 306, 304, 306,
	306, 306, 306, 306, 306, 306, 305, 272, 272, 272, 272, 272, 272, 272, 272, 116, 176, 298, 299, 188,
	298, 2335, 299, 300, 300, 200, 298, 2335, 299, 2336, 2346, 300, 301, 301, 301, 212, 298, 2335, 299, 2336,
	2346, 300, 2337, 2347, 2356, 301, 302, 302, 302, 302, 224, 298, 2335, 299, 2336, 2346, 300, 2337, 2347, 2356,
	301, 2338, 2348, 2357, 2365, 302, 303, 303, 303, 303, 303, 236, 298, 2335, 299, 2336, 2346, 300, 2337, 2347,
	2356, 301, 2338, 2348, 2357, 2365, 302, 2339, 2349, 2358, 2366, 2373, 303, 304, 304, 304, 304, 304, 304, 248,
	298, 2335, 299, 2336, 2346, 300, 2337, 2347, 2356, 301, 2338, 2348, 2357, 2365, 302, 2339, 2349, 2358, 2366, 2373,
	303, 2340, 2350, 2359, 2367, 2374, 2380, 304, 305, 305, 305, 305, 305, 305, 305, 260, 298, 2335, 299, 2336,
	2346, 300, 2337, 2347, 2356, 301, 2338, 2348, 2357, 2365, 302, 2339, 2349, 2358, 2366, 2373, 303, 2340, 2350, 2359,
	2367, 2374, 2380, 304, 2341, 2351, 2360, 2368, 2375, 2381, 2386, 305, 306, 306, 306, 306, 306, 306, 306, 306,
	272, 298, 307, 299, 307, 307, 300, 307, 307, 307, 301, 307, 307, 307, 307, 302, 307, 307, 307, 307,
	307, 303, 307, 307, 307, 307, 307, 307, 304, 307, 307, 307, 307, 307, 307, 307, 305, 307, 307, 307,
	307, 307, 307, 307, 307, 306, 284, 284, 284, 284, 284, 284, 284, 284, 284, 128, 176, 298, 299, 188,
	298, 2335, 299, 300, 300, 200, 298, 2335, 299, 2336, 2346, 300, 301, 301, 301, 212, 298, 2335, 299, 2336,
	2346, 300, 2337, 2347, 2356, 301, 302, 302, 302, 302, 224, 298, 2335, 299, 2336, 2346, 300, 2337, 2347, 2356,
	301, 2338, 2348, 2357, 2365, 302, 303, 303, 303, 303, 303, 236, 298, 2335, 299, 2336, 2346, 300, 2337, 2347,
	2356, 301, 2338, 2348, 2357, 2365, 302, 2339, 2349, 2358, 2366, 2373, 303, 304, 304, 304, 304, 304, 304, 248,
	298, 2335, 299, 2336, 2346, 300, 2337, 2347, 2356, 301, 2338, 2348, 2357, 2365, 302, 2339, 2349, 2358, 2366, 2373,
	303, 2340, 2350, 2359, 2367, 2374, 2380, 304, 305, 305, 305, 305, 305, 305, 305, 260, 298, 2335, 299, 2336,
	2346, 300, 2337, 2347, 2356, 301, 2338, 2348, 2357, 2365, 302, 2339, 2349, 2358, 2366, 2373, 303, 2340, 2350, 2359,
	2367, 2374, 2380, 304, 2341, 2351, 2360, 2368, 2375, 2381, 2386, 305, 306, 306, 306, 306, 306, 306, 306, 306,
	272, 298, 2335, 299, 2336, 2346, 300, 2337, 2347, 2356, 301, 2338, 2348, 2357, 2365, 302, 2339, 2349, 2358, 2366,
	2373, 303, 2340, 2350, 2359, 2367, 2374, 2380, 304, 2341, 2351, 2360, 2368, 2375, 2381, 2386, 305, 2342, 2352, 2361,
	2369, 2376, 2382, 2387, 1606, 306, 307, 307, 307, 307, 307, 307, 307, 307, 307, 284, 298, 308, 299, 308,
	308, 300, 308, 308, 308, 301, 308, 308, 308, 308, 302, 308, 308, 308, 308, 308, 303, 308, 308, 308,
	308, 308, 308, 304, 308, 308, 308, 308, 308, 308, 308, 305, 308, 308, 308, 308, 308, 308, 308, 308,
	306, 308, 308, 308, 308, 308, 308, 308, 308, 308, 307, 296, 296, 296, 296, 296, 296, 296, 296, 296,
	296, 140, 142, 142, 142, 143, 142, 142, 143, 142, 143, 144, 142, 142, 143, 142, 143, 144, 142, 143,
	144, 145, 142, 142, 143, 142, 143, 144, 142, 143, 144, 145, 142, 143, 144, 145, 146, 142, 142, 143,
	142, 143, 144, 142, 143, 144, 145, 142, 143, 144, 145, 146, 142, 143, 144, 145, 146, 147, 142, 142,
	143, 142, 143, 144, 142, 143, 144, 145, 142, 143, 144, 145, 146, 142, 143, 144, 145, 146, 147, 142,
	143, 144, 145, 146, 147, 148, 142, 142, 143, 142, 143, 144, 142, 143, 144, 145, 142, 143, 144, 145,
	146, 142, 143, 144, 145, 146, 147, 142, 143, 144, 145, 146, 147, 148, 142, 143, 144, 145, 146, 147,
	148, 149, 142, 142, 143, 142, 143, 144, 142, 143, 144, 145, 142, 143, 144, 145, 146, 142, 143, 144,
	145, 146, 147, 142, 143, 144, 145, 146, 147, 148, 142, 143, 144, 145, 146, 147, 148, 149, 142, 143,
	144, 145, 146, 147, 148, 149, 150, 142, 142, 143, 142, 143, 144, 142, 143, 144, 145, 142, 143, 144,
	145, 146, 142, 143, 144, 145, 146, 147, 142, 143, 144, 145, 146, 147, 148, 142, 143, 144, 145, 146,
	147, 148, 149, 142, 143, 144, 145, 146, 147, 148, 149, 150, 142, 143, 144, 145, 146, 147, 148, 149,
	150, 151, 142, 142, 143, 142, 143, 144, 142, 143, 144, 145, 142, 143, 144, 145, 146, 142, 143, 144,
	145, 146, 147, 142, 143, 144, 145, 146, 147, 148, 142, 143, 144, 145, 146, 147, 148, 149, 142, 143,
	144, 145, 146, 147, 148, 149, 150, 142, 143, 144, 145, 146, 147, 148, 149, 150, 151, 142, 143, 144,
	145, 146, 147, 148, 149, 150, 151, 152, 10, 166, 22, 10, 166, 178, 22, 11, 167, 2467, 179, 23,
	167, 190, 191, 179, 34, 34, 35, 10, 166, 178, 22, 11, 1609, 2467, 1675, 23, 167, 2478, 2599, 179,
	190, 1741, 191, 34, 35, 12, 168, 2468, 180, 24, 168, 2489, 2610, 180, 2479, 2720, 2600, 192, 192, 36,
	168, 202, 203, 180, 202, 1807, 203, 204, 204, 192, 46, 46, 47, 46, 47, 48, 10, 166, 178, 22,
	11, 1609, 2467, 1675, 23, 167, 2478, 2599, 179, 190, 1741, 191, 34, 35, 12, 1610, 2468, 1676, 24, 1620,
	1599, 1599, 1686, 2479, 1599, 2600, 1742, 1752, 36, 168, 2489, 2610, 180, 2490, 1599, 2611, 2720, 2721, 192, 202,
	1807, 203, 1808, 1818, 204, 46, 47, 48, 13, 169, 2469, 181, 25, 169, 2500, 2621, 181, 2480, 2731, 2601,
	193, 193, 37, 169, 2500, 2621, 181, 2501, 1599, 2622, 2731, 2732, 193, 2491, 2830, 2612, 2830, 2831, 2722, 205,
	205, 205, 49, 169, 214, 215, 181, 214, 1873, 215, 216, 216, 193, 214, 1873, 215, 1874, 1884, 216, 217,
	217, 217, 205, 58, 58, 59, 58, 59, 60, 58, 59, 60, 61, 10, 166, 178, 22, 11, 1609, 2467,
	1675, 23, 167, 2478, 2599, 179, 190, 1741, 191, 34, 35, 12, 1610, 2468, 1676, 24, 1620, 3325, 3545, 1686,
	2479, 3765, 2600, 1742, 1752, 36, 168, 2489, 2610, 180, 2490, 3985, 2611, 2720, 2721, 192, 202, 1807, 203, 1808,
	1818, 204, 46, 47, 48, 13, 1611, 2469, 1677, 25, 1621, 3326, 3546, 1687, 2480, 3766, 2601, 1743, 1753, 37,
	1630, 3335, 3555, 1696, 3380, 1599, 1600, 3775, 1600, 1762, 2491, 3986, 2612, 3995, 1600, 2722, 1809, 1819, 1828, 49,
	169, 2500, 2621, 181, 2501, 4205, 2622, 2731, 2732, 193, 2502, 4206, 2623, 4215, 1600, 2733, 2830, 2831, 2832, 205,
	214, 1873, 215, 1874, 1884, 216, 1875, 1885, 1894, 217, 58, 59, 60, 61, 14, 170, 2470, 182, 26, 170,
	2511, 2632, 182, 2481, 2742, 2602, 194, 194, 38, 170, 2511, 2632, 182, 2512, 4425, 2633, 2742, 2743, 194, 2492,
	2841, 2613, 2841, 2842, 2723, 206, 206, 206, 50, 170, 2511, 2632, 182, 2512, 4425, 2633, 2742, 2743, 194, 2513,
	4426, 2634, 4435, 1600, 2744, 2841, 2842, 2843, 206, 2503, 2929, 2624, 2929, 2930, 2734, 2929, 2930, 2931, 2833, 218,
	218, 218, 218, 62, 170, 226, 227, 182, 226, 1939, 227, 228, 228, 194, 226, 1939, 227, 1940, 1950, 228,
	229, 229, 229, 206, 226, 1939, 227, 1940, 1950, 228, 1941, 1951, 1960, 229, 230, 230, 230, 230, 218, 70,
	70, 71, 70, 71, 72, 70, 71, 72, 73, 70, 71, 72, 73, 74, 10, 166, 178, 22, 11, 1609,
	2467, 1675, 23, 167, 2478, 2599, 179, 190, 1741, 191, 34, 35, 12, 1610, 2468, 1676, 24, 1620, 3325, 3545,
	1686, 2479, 3765, 2600, 1742, 1752, 36, 168, 2489, 2610, 180, 2490, 3985, 2611, 2720, 2721, 192, 202, 1807, 203,
	1808, 1818, 204, 46, 47, 48, 13, 1611, 2469, 1677, 25, 1621, 3326, 3546, 1687, 2480, 3766, 2601, 1743, 1753,
	37, 1630, 3335, 3555, 1696, 3380, 1599, 3600, 3775, 3820, 1762, 2491, 3986, 2612, 3995, 4040, 2722, 1809, 1819, 1828,
	49, 169, 2500, 2621, 181, 2501, 4205, 2622, 2731, 2732, 193, 2502, 4206, 2623, 4215, 4260, 2733, 2830, 2831, 2832,
	205, 214, 1873, 215, 1874, 1884, 216, 1875, 1885, 1894, 217, 58, 59, 60, 61, 14, 1612, 2470, 1678, 26,
	1622, 3327, 3547, 1688, 2481, 3767, 2602, 1744, 1754, 38, 1631, 3336, 3556, 1697, 3381, 6185, 3601, 3776, 3821, 1763,
	2492, 3987, 2613, 3996, 4041, 2723, 1810, 1820, 1829, 50, 1639, 3344, 3564, 1705, 3389, 6193, 3609, 3784, 3829, 1771,
	3425, 6229, 3645, 1601, 1600, 1601, 4004, 4049, 1601, 1837, 2503, 4207, 2624, 4216, 4261, 2734, 4224, 4269, 1601, 2833,
	1876, 1886, 1895, 1903, 62, 170, 2511, 2632, 182, 2512, 4425, 2633, 2742, 2743, 194, 2513, 4426, 2634, 4435, 4480,
	2744, 2841, 2842, 2843, 206, 2514, 4427, 2635, 4436, 4481, 2745, 4444, 4489, 1601, 2844, 2929, 2930, 2931, 2932, 218,
	226, 1939, 227, 1940, 1950, 228, 1941, 1951, 1960, 229, 1942, 1952, 1961, 1969, 230, 70, 71, 72, 73, 74,
	15, 171, 2471, 183, 27, 171, 2522, 2643, 183, 2482, 2753, 2603, 195, 195, 39, 171, 2522, 2643, 183, 2523,
	4645, 2644, 2753, 2754, 195, 2493, 2852, 2614, 2852, 2853, 2724, 207, 207, 207, 51, 171, 2522, 2643, 183, 2523,
	4645, 2644, 2753, 2754, 195, 2524, 4646, 2645, 4655, 4700, 2755, 2852, 2853, 2854, 207, 2504, 2940, 2625, 2940, 2941,
	2735, 2940, 2941, 2942, 2834, 219, 219, 219, 219, 63, 171, 2522, 2643, 183, 2523, 4645, 2644, 2753, 2754, 195,
	2524, 4646, 2645, 4655, 4700, 2755, 2852, 2853, 2854, 207, 2525, 4647, 2646, 4656, 4701, 2756, 4664, 4709, 1601, 2855,
	2940, 2941, 2942, 2943, 219, 2515, 3017, 2636, 3017, 3018, 2746, 3017, 3018, 3019, 2845, 3017, 3018, 3019, 3020, 2933,
	231, 231, 231, 231, 231, 75, 171, 238, 239, 183, 238, 2005, 239, 240, 240, 195, 238, 2005, 239, 2006,
	2016, 240, 241, 241, 241, 207, 238, 2005, 239, 2006, 2016, 240, 2007, 2017, 2026, 241, 242, 242, 242, 242,
	219, 238, 2005, 239, 2006, 2016, 240, 2007, 2017, 2026, 241, 2008, 2018, 2027, 2035, 242, 243, 243, 243, 243,
	243, 231, 82, 82, 83, 82, 83, 84, 82, 83, 84, 85, 82, 83, 84, 85, 86, 82, 83, 84,
	85, 86, 87, 10, 166, 178, 22, 11, 1609, 2467, 1675, 23, 167, 2478, 2599, 179, 190, 1741, 191, 34,
	35, 12, 1610, 2468, 1676, 24, 1620, 3325, 3545, 1686, 2479, 3765, 2600, 1742, 1752, 36, 168, 2489, 2610, 180,
	2490, 3985, 2611, 2720, 2721, 192, 202, 1807, 203, 1808, 1818, 204, 46, 47, 48, 13, 1611, 2469, 1677, 25,
	1621, 3326, 3546, 1687, 2480, 3766, 2601, 1743, 1753, 37, 1630, 3335, 3555, 1696, 3380, 1599, 3600, 3775, 3820, 1762,
	2491, 3986, 2612, 3995, 4040, 2722, 1809, 1819, 1828, 49, 169, 2500, 2621, 181, 2501, 4205, 2622, 2731, 2732, 193,
	2502, 4206, 2623, 4215, 4260, 2733, 2830, 2831, 2832, 205, 214, 1873, 215, 1874, 1884, 216, 1875, 1885, 1894, 217,
	58, 59, 60, 61, 14, 1612, 2470, 1678, 26, 1622, 3327, 3547, 1688, 2481, 3767, 2602, 1744, 1754, 38, 1631,
	3336, 3556, 1697, 3381, 6185, 3601, 3776, 3821, 1763, 2492, 3987, 2613, 3996, 4041, 2723, 1810, 1820, 1829, 50, 1639,
	3344, 3564, 1705, 3389, 6193, 3609, 3784, 3829, 1771, 3425, 6229, 3645, 6349, 1600, 3865, 4004, 4049, 4085, 1837, 2503,
	4207, 2624, 4216, 4261, 2734, 4224, 4269, 4305, 2833, 1876, 1886, 1895, 1903, 62, 170, 2511, 2632, 182, 2512, 4425,
	2633, 2742, 2743, 194, 2513, 4426, 2634, 4435, 4480, 2744, 2841, 2842, 2843, 206, 2514, 4427, 2635, 4436, 4481, 2745,
	4444, 4489, 4525, 2844, 2929, 2930, 2931, 2932, 218, 226, 1939, 227, 1940, 1950, 228, 1941, 1951, 1960, 229, 1942,
	1952, 1961, 1969, 230, 70, 71, 72, 73, 74, 15, 1613, 2471, 1679, 27, 1623, 3328, 3548, 1689, 2482, 3768,
	2603, 1745, 1755, 39, 1632, 3337, 3557, 1698, 3382, 6186, 3602, 3777, 3822, 1764, 2493, 3988, 2614, 3997, 4042, 2724,
	1811, 1821, 1830, 51, 1640, 3345, 3565, 1706, 3390, 6194, 3610, 3785, 3830, 1772, 3426, 6230, 3646, 6350, 6678, 3866,
	4005, 4050, 4086, 1838, 2504, 4208, 2625, 4217, 4262, 2735, 4225, 4270, 4306, 2834, 1877, 1887, 1896, 1904, 63, 1647,
	3352, 3572, 1713, 3397, 6201, 3617, 3792, 3837, 1779, 3433, 6237, 3653, 6357, 6685, 3873, 4012, 4057, 4093, 1845, 3461,
	6265, 3681, 6385, 6713, 3901, 1602, 1602, 1601, 1602, 4232, 4277, 4313, 1602, 1911, 2515, 4428, 2636, 4437, 4482, 2746,
	4445, 4490, 4526, 2845, 4452, 4497, 4533, 1602, 2933, 1943, 1953, 1962, 1970, 1977, 75, 171, 2522, 2643, 183, 2523,
	4645, 2644, 2753, 2754, 195, 2524, 4646, 2645, 4655, 4700, 2755, 2852, 2853, 2854, 207, 2525, 4647, 2646, 4656, 4701,
	2756, 4664, 4709, 4745, 2855, 2940, 2941, 2942, 2943, 219, 2526, 4648, 2647, 4657, 4702, 2757, 4665, 4710, 4746, 2856,
	4672, 4717, 4753, 1602, 2944, 3017, 3018, 3019, 3020, 3021, 231, 238, 2005, 239, 2006, 2016, 240, 2007, 2017, 2026,
	241, 2008, 2018, 2027, 2035, 242, 2009, 2019, 2028, 2036, 2043, 243, 82, 83, 84, 85, 86, 87, 16, 172,
	2472, 184, 28, 172, 2533, 2654, 184, 2483, 2764, 2604, 196, 196, 40, 172, 2533, 2654, 184, 2534, 4865, 2655,
	2764, 2765, 196, 2494, 2863, 2615, 2863, 2864, 2725, 208, 208, 208, 52, 172, 2533, 2654, 184, 2534, 4865, 2655,
	2764, 2765, 196, 2535, 4866, 2656, 4875, 4920, 2766, 2863, 2864, 2865, 208, 2505, 2951, 2626, 2951, 2952, 2736, 2951,
	2952, 2953, 2835, 220, 220, 220, 220, 64, 172, 2533, 2654, 184, 2534, 4865, 2655, 2764, 2765, 196, 2535, 4866,
	2656, 4875, 4920, 2766, 2863, 2864, 2865, 208, 2536, 4867, 2657, 4876, 4921, 2767, 4884, 4929, 4965, 2866, 2951, 2952,
	2953, 2954, 220, 2516, 3028, 2637, 3028, 3029, 2747, 3028, 3029, 3030, 2846, 3028, 3029, 3030, 3031, 2934, 232, 232,
	232, 232, 232, 76, 172, 2533, 2654, 184, 2534, 4865, 2655, 2764, 2765, 196, 2535, 4866, 2656, 4875, 4920, 2766,
	2863, 2864, 2865, 208, 2536, 4867, 2657, 4876, 4921, 2767, 4884, 4929, 4965, 2866, 2951, 2952, 2953, 2954, 220, 2537,
	4868, 2658, 4877, 4922, 2768, 4885, 4930, 4966, 2867, 4892, 4937, 4973, 1602, 2955, 3028, 3029, 3030, 3031, 3032, 232,
	2527, 3094, 2648, 3094, 3095, 2758, 3094, 3095, 3096, 2857, 3094, 3095, 3096, 3097, 2945, 3094, 3095, 3096, 3097, 3098,
	3022, 244, 244, 244, 244, 244, 244, 88, 172, 250, 251, 184, 250, 2071, 251, 252, 252, 196, 250, 2071,
	251, 2072, 2082, 252, 253, 253, 253, 208, 250, 2071, 251, 2072, 2082, 252, 2073, 2083, 2092, 253, 254, 254,
	254, 254, 220, 250, 2071, 251, 2072, 2082, 252, 2073, 2083, 2092, 253, 2074, 2084, 2093, 2101, 254, 255, 255,
	255, 255, 255, 232, 250, 2071, 251, 2072, 2082, 252, 2073, 2083, 2092, 253, 2074, 2084, 2093, 2101, 254, 2075,
	2085, 2094, 2102, 2109, 255, 256, 256, 256, 256, 256, 256, 244, 94, 94, 95, 94, 95, 96, 94, 95,
	96, 97, 94, 95, 96, 97, 98, 94, 95, 96, 97, 98, 99, 94, 95, 96, 97, 98, 99, 100,
	10, 166, 178, 22, 11, 1609, 2467, 1675, 23, 167, 2478, 2599, 179, 190, 1741, 191, 34, 35, 12, 1610,
	2468, 1676, 24, 1620, 3325, 3545, 1686, 2479, 3765, 2600, 1742, 1752, 36, 168, 2489, 2610, 180, 2490, 3985, 2611,
	2720, 2721, 192, 202, 1807, 203, 1808, 1818, 204, 46, 47, 48, 13, 1611, 2469, 1677, 25, 1621, 3326, 3546,
	1687, 2480, 3766, 2601, 1743, 1753, 37, 1630, 3335, 3555, 1696, 3380, 1599, 3600, 3775, 3820, 1762, 2491, 3986, 2612,
	3995, 4040, 2722, 1809, 1819, 1828, 49, 169, 2500, 2621, 181, 2501, 4205, 2622, 2731, 2732, 193, 2502, 4206, 2623,
	4215, 4260, 2733, 2830, 2831, 2832, 205, 214, 1873, 215, 1874, 1884, 216, 1875, 1885, 1894, 217, 58, 59, 60,
	61, 14, 1612, 2470, 1678, 26, 1622, 3327, 3547, 1688, 2481, 3767, 2602, 1744, 1754, 38, 1631, 3336, 3556, 1697,
	3381, 6185, 3601, 3776, 3821, 1763, 2492, 3987, 2613, 3996, 4041, 2723, 1810, 1820, 1829, 50, 1639, 3344, 3564, 1705,
	3389, 6193, 3609, 3784, 3829, 1771, 3425, 6229, 3645, 6349, 1600, 3865, 4004, 4049, 4085, 1837, 2503, 4207, 2624, 4216,
	4261, 2734, 4224, 4269, 4305, 2833, 1876, 1886, 1895, 1903, 62, 170, 2511, 2632, 182, 2512, 4425, 2633, 2742, 2743,
	194, 2513, 4426, 2634, 4435, 4480, 2744, 2841, 2842, 2843, 206, 2514, 4427, 2635, 4436, 4481, 2745, 4444, 4489, 4525,
	2844, 2929, 2930, 2931, 2932, 218, 226, 1939, 227, 1940, 1950, 228, 1941, 1951, 1960, 229, 1942, 1952, 1961, 1969,
	230, 70, 71, 72, 73, 74, 15, 1613, 2471, 1679, 27, 1623, 3328, 3548, 1689, 2482, 3768, 2603, 1745, 1755,
	39, 1632, 3337, 3557, 1698, 3382, 6186, 3602, 3777, 3822, 1764, 2493, 3988, 2614, 3997, 4042, 2724, 1811, 1821, 1830,
	51, 1640, 3345, 3565, 1706, 3390, 6194, 3610, 3785, 3830, 1772, 3426, 6230, 3646, 6350, 6678, 3866, 4005, 4050, 4086,
	1838, 2504, 4208, 2625, 4217, 4262, 2735, 4225, 4270, 4306, 2834, 1877, 1887, 1896, 1904, 63, 1647, 3352, 3572, 1713,
	3397, 6201, 3617, 3792, 3837, 1779, 3433, 6237, 3653, 6357, 6685, 3873, 4012, 4057, 4093, 1845, 3461, 6265, 3681, 6385,
	6713, 3901, 6469, 6797, 1601, 4121, 4232, 4277, 4313, 4341, 1911, 2515, 4428, 2636, 4437, 4482, 2746, 4445, 4490, 4526,
	2845, 4452, 4497, 4533, 4561, 2933, 1943, 1953, 1962, 1970, 1977, 75, 171, 2522, 2643, 183, 2523, 4645, 2644, 2753,
	2754, 195, 2524, 4646, 2645, 4655, 4700, 2755, 2852, 2853, 2854, 207, 2525, 4647, 2646, 4656, 4701, 2756, 4664, 4709,
	4745, 2855, 2940, 2941, 2942, 2943, 219, 2526, 4648, 2647, 4657, 4702, 2757, 4665, 4710, 4746, 2856, 4672, 4717, 4753,
	4781, 2944, 3017, 3018, 3019, 3020, 3021, 231, 238, 2005, 239, 2006, 2016, 240, 2007, 2017, 2026, 241, 2008, 2018,
	2027, 2035, 242, 2009, 2019, 2028, 2036, 2043, 243, 82, 83, 84, 85, 86, 87, 16, 1614, 2472, 1680, 28,
	1624, 3329, 3549, 1690, 2483, 3769, 2604, 1746, 1756, 40, 1633, 3338, 3558, 1699, 3383, 6187, 3603, 3778, 3823, 1765,
	2494, 3989, 2615, 3998, 4043, 2725, 1812, 1822, 1831, 52, 1641, 3346, 3566, 1707, 3391, 6195, 3611, 3786, 3831, 1773,
	3427, 6231, 3647, 6351, 6679, 3867, 4006, 4051, 4087, 1839, 2505, 4209, 2626, 4218, 4263, 2736, 4226, 4271, 4307, 2835,
	1878, 1888, 1897, 1905, 64, 1648, 3353, 3573, 1714, 3398, 6202, 3618, 3793, 3838, 1780, 3434, 6238, 3654, 6358, 6686,
	3874, 4013, 4058, 4094, 1846, 3462, 6266, 3682, 6386, 6714, 3902, 6470, 6798, 7007, 4122, 4233, 4278, 4314, 4342, 1912,
	2516, 4429, 2637, 4438, 4483, 2747, 4446, 4491, 4527, 2846, 4453, 4498, 4534, 4562, 2934, 1944, 1954, 1963, 1971, 1978,
	76, 1654, 3359, 3579, 1720, 3404, 6208, 3624, 3799, 3844, 1786, 3440, 6244, 3660, 6364, 6692, 3880, 4019, 4064, 4100,
	1852, 3468, 6272, 3688, 6392, 6720, 3908, 6476, 6804, 7013, 4128, 4239, 4284, 4320, 4348, 1918, 3489, 6293, 3709, 6413,
	6741, 3929, 6497, 6825, 7034, 4149, 1603, 1603, 1603, 1602, 1603, 4459, 4504, 4540, 4568, 1603, 1984, 2527, 4649, 2648,
	4658, 4703, 2758, 4666, 4711, 4747, 2857, 4673, 4718, 4754, 4782, 2945, 4679, 4724, 4760, 4788, 1603, 3022, 2010, 2020,
	2029, 2037, 2044, 2050, 88, 172, 2533, 2654, 184, 2534, 4865, 2655, 2764, 2765, 196, 2535, 4866, 2656, 4875, 4920,
	2766, 2863, 2864, 2865, 208, 2536, 4867, 2657, 4876, 4921, 2767, 4884, 4929, 4965, 2866, 2951, 2952, 2953, 2954, 220,
	2537, 4868, 2658, 4877, 4922, 2768, 4885, 4930, 4966, 2867, 4892, 4937, 4973, 5001, 2955, 3028, 3029, 3030, 3031, 3032,
	232, 2538, 4869, 2659, 4878, 4923, 2769, 4886, 4931, 4967, 2868, 4893, 4938, 4974, 5002, 2956, 4899, 4944, 4980, 5008,
	1603, 3033, 3094, 3095, 3096, 3097, 3098, 3099, 244, 250, 2071, 251, 2072, 2082, 252, 2073, 2083, 2092, 253, 2074,
	2084, 2093, 2101, 254, 2075, 2085, 2094, 2102, 2109, 255, 2076, 2086, 2095, 2103, 2110, 2116, 256, 94, 95, 96,
	97, 98, 99, 100, 17, 173, 2473, 185, 29, 173, 2544, 2665, 185, 2484, 2775, 2605, 197, 197, 41, 173,
	2544, 2665, 185, 2545, 5085, 2666, 2775, 2776, 197, 2495, 2874, 2616, 2874, 2875, 2726, 209, 209, 209, 53, 173,
	2544, 2665, 185, 2545, 5085, 2666, 2775, 2776, 197, 2546, 5086, 2667, 5095, 5140, 2777, 2874, 2875, 2876, 209, 2506,
	2962, 2627, 2962, 2963, 2737, 2962, 2963, 2964, 2836, 221, 221, 221, 221, 65, 173, 2544, 2665, 185, 2545, 5085,
	2666, 2775, 2776, 197, 2546, 5086, 2667, 5095, 5140, 2777, 2874, 2875, 2876, 209, 2547, 5087, 2668, 5096, 5141, 2778,
	5104, 5149, 5185, 2877, 2962, 2963, 2964, 2965, 221, 2517, 3039, 2638, 3039, 3040, 2748, 3039, 3040, 3041, 2847, 3039,
	3040, 3041, 3042, 2935, 233, 233, 233, 233, 233, 77, 173, 2544, 2665, 185, 2545, 5085, 2666, 2775, 2776, 197,
	2546, 5086, 2667, 5095, 5140, 2777, 2874, 2875, 2876, 209, 2547, 5087, 2668, 5096, 5141, 2778, 5104, 5149, 5185, 2877,
	2962, 2963, 2964, 2965, 221, 2548, 5088, 2669, 5097, 5142, 2779, 5105, 5150, 5186, 2878, 5112, 5157, 5193, 5221, 2966,
	3039, 3040, 3041, 3042, 3043, 233, 2528, 3105, 2649, 3105, 3106, 2759, 3105, 3106, 3107, 2858, 3105, 3106, 3107, 3108,
	2946, 3105, 3106, 3107, 3108, 3109, 3023, 245, 245, 245, 245, 245, 245, 89, 173, 2544, 2665, 185, 2545, 5085,
	2666, 2775, 2776, 197, 2546, 5086, 2667, 5095, 5140, 2777, 2874, 2875, 2876, 209, 2547, 5087, 2668, 5096, 5141, 2778,
	5104, 5149, 5185, 2877, 2962, 2963, 2964, 2965, 221, 2548, 5088, 2669, 5097, 5142, 2779, 5105, 5150, 5186, 2878, 5112,
	5157, 5193, 5221, 2966, 3039, 3040, 3041, 3042, 3043, 233, 2549, 5089, 2670, 5098, 5143, 2780, 5106, 5151, 5187, 2879,
	5113, 5158, 5194, 5222, 2967, 5119, 5164, 5200, 5228, 1603, 3044, 3105, 3106, 3107, 3108, 3109, 3110, 245, 2539, 3160,
	2660, 3160, 3161, 2770, 3160, 3161, 3162, 2869, 3160, 3161, 3162, 3163, 2957, 3160, 3161, 3162, 3163, 3164, 3034, 3160,
	3161, 3162, 3163, 3164, 3165, 3100, 257, 257, 257, 257, 257, 257, 257, 101, 173, 262, 263, 185, 262, 2137,
	263, 264, 264, 197, 262, 2137, 263, 2138, 2148, 264, 265, 265, 265, 209, 262, 2137, 263, 2138, 2148, 264,
	2139, 2149, 2158, 265, 266, 266, 266, 266, 221, 262, 2137, 263, 2138, 2148, 264, 2139, 2149, 2158, 265, 2140,
	2150, 2159, 2167, 266, 267, 267, 267, 267, 267, 233, 262, 2137, 263, 2138, 2148, 264, 2139, 2149, 2158, 265,
	2140, 2150, 2159, 2167, 266, 2141, 2151, 2160, 2168, 2175, 267, 268, 268, 268, 268, 268, 268, 245, 262, 2137,
	263, 2138, 2148, 264, 2139, 2149, 2158, 265, 2140, 2150, 2159, 2167, 266, 2141, 2151, 2160, 2168, 2175, 267, 2142,
	2152, 2161, 2169, 2176, 2182, 268, 269, 269, 269, 269, 269, 269, 269, 257, 106, 106, 107, 106, 107, 108,
	106, 107, 108, 109, 106, 107, 108, 109, 110, 106, 107, 108, 109, 110, 111, 106, 107, 108, 109, 110,
	111, 112, 106, 107, 108, 109, 110, 111, 112, 113, 10, 166, 178, 22, 11, 1609, 2467, 1675, 23, 167,
	2478, 2599, 179, 190, 1741, 191, 34, 35, 12, 1610, 2468, 1676, 24, 1620, 3325, 3545, 1686, 2479, 3765, 2600,
	1742, 1752, 36, 168, 2489, 2610, 180, 2490, 3985, 2611, 2720, 2721, 192, 202, 1807, 203, 1808, 1818, 204, 46,
	47, 48, 13, 1611, 2469, 1677, 25, 1621, 3326, 3546, 1687, 2480, 3766, 2601, 1743, 1753, 37, 1630, 3335, 3555,
	1696, 3380, 1599, 3600, 3775, 3820, 1762, 2491, 3986, 2612, 3995, 4040, 2722, 1809, 1819, 1828, 49, 169, 2500, 2621,
	181, 2501, 4205, 2622, 2731, 2732, 193, 2502, 4206, 2623, 4215, 4260, 2733, 2830, 2831, 2832, 205, 214, 1873, 215,
	1874, 1884, 216, 1875, 1885, 1894, 217, 58, 59, 60, 61, 14, 1612, 2470, 1678, 26, 1622, 3327, 3547, 1688,
	2481, 3767, 2602, 1744, 1754, 38, 1631, 3336, 3556, 1697, 3381, 6185, 3601, 3776, 3821, 1763, 2492, 3987, 2613, 3996,
	4041, 2723, 1810, 1820, 1829, 50, 1639, 3344, 3564, 1705, 3389, 6193, 3609, 3784, 3829, 1771, 3425, 6229, 3645, 6349,
	1600, 3865, 4004, 4049, 4085, 1837, 2503, 4207, 2624, 4216, 4261, 2734, 4224, 4269, 4305, 2833, 1876, 1886, 1895, 1903,
	62, 170, 2511, 2632, 182, 2512, 4425, 2633, 2742, 2743, 194, 2513, 4426, 2634, 4435, 4480, 2744, 2841, 2842, 2843,
	206, 2514, 4427, 2635, 4436, 4481, 2745, 4444, 4489, 4525, 2844, 2929, 2930, 2931, 2932, 218, 226, 1939, 227, 1940,
	1950, 228, 1941, 1951, 1960, 229, 1942, 1952, 1961, 1969, 230, 70, 71, 72, 73, 74, 15, 1613, 2471, 1679,
	27, 1623, 3328, 3548, 1689, 2482, 3768, 2603, 1745, 1755, 39, 1632, 3337, 3557, 1698, 3382, 6186, 3602, 3777, 3822,
	1764, 2493, 3988, 2614, 3997, 4042, 2724, 1811, 1821, 1830, 51, 1640, 3345, 3565, 1706, 3390, 6194, 3610, 3785, 3830,
	1772, 3426, 6230, 3646, 6350, 6678, 3866, 4005, 4050, 4086, 1838, 2504, 4208, 2625, 4217, 4262, 2735, 4225, 4270, 4306,
	2834, 1877, 1887, 1896, 1904, 63, 1647, 3352, 3572, 1713, 3397, 6201, 3617, 3792, 3837, 1779, 3433, 6237, 3653, 6357,
	6685, 3873, 4012, 4057, 4093, 1845, 3461, 6265, 3681, 6385, 6713, 3901, 6469, 6797, 1601, 4121, 4232, 4277, 4313, 4341,
	1911, 2515, 4428, 2636, 4437, 4482, 2746, 4445, 4490, 4526, 2845, 4452, 4497, 4533, 4561, 2933, 1943, 1953, 1962, 1970,
	1977, 75, 171, 2522, 2643, 183, 2523, 4645, 2644, 2753, 2754, 195, 2524, 4646, 2645, 4655, 4700, 2755, 2852, 2853,
	2854, 207, 2525, 4647, 2646, 4656, 4701, 2756, 4664, 4709, 4745, 2855, 2940, 2941, 2942, 2943, 219, 2526, 4648, 2647,
	4657, 4702, 2757, 4665, 4710, 4746, 2856, 4672, 4717, 4753, 4781, 2944, 3017, 3018, 3019, 3020, 3021, 231, 238, 2005,
	239, 2006, 2016, 240, 2007, 2017, 2026, 241, 2008, 2018, 2027, 2035, 242, 2009, 2019, 2028, 2036, 2043, 243, 82,
	83, 84, 85, 86, 87, 16, 1614, 2472, 1680, 28, 1624, 3329, 3549, 1690, 2483, 3769, 2604, 1746, 1756, 40,
	1633, 3338, 3558, 1699, 3383, 6187, 3603, 3778, 3823, 1765, 2494, 3989, 2615, 3998, 4043, 2725, 1812, 1822, 1831, 52,
	1641, 3346, 3566, 1707, 3391, 6195, 3611, 3786, 3831, 1773, 3427, 6231, 3647, 6351, 6679, 3867, 4006, 4051, 4087, 1839,
	2505, 4209, 2626, 4218, 4263, 2736, 4226, 4271, 4307, 2835, 1878, 1888, 1897, 1905, 64, 1648, 3353, 3573, 1714, 3398,
	6202, 3618, 3793, 3838, 1780, 3434, 6238, 3654, 6358, 6686, 3874, 4013, 4058, 4094, 1846, 3462, 6266, 3682, 6386, 6714,
	3902, 6470, 6798, 7007, 4122, 4233, 4278, 4314, 4342, 1912, 2516, 4429, 2637, 4438, 4483, 2747, 4446, 4491, 4527, 2846,
	4453, 4498, 4534, 4562, 2934, 1944, 1954, 1963, 1971, 1978, 76, 1654, 3359, 3579, 1720, 3404, 6208, 3624, 3799, 3844,
	1786, 3440, 6244, 3660, 6364, 6692, 3880, 4019, 4064, 4100, 1852, 3468, 6272, 3688, 6392, 6720, 3908, 6476, 6804, 7013,
	4128, 4239, 4284, 4320, 4348, 1918, 3489, 6293, 3709, 6413, 6741, 3929, 6497, 6825, 7034, 4149, 6553, 6881, 7090, 1602,
	4369, 4459, 4504, 4540, 4568, 4589, 1984, 2527, 4649, 2648, 4658, 4703, 2758, 4666, 4711, 4747, 2857, 4673, 4718, 4754,
	4782, 2945, 4679, 4724, 4760, 4788, 4809, 3022, 2010, 2020, 2029, 2037, 2044, 2050, 88, 172, 2533, 2654, 184, 2534,
	4865, 2655, 2764, 2765, 196, 2535, 4866, 2656, 4875, 4920, 2766, 2863, 2864, 2865, 208, 2536, 4867, 2657, 4876, 4921,
	2767, 4884, 4929, 4965, 2866, 2951, 2952, 2953, 2954, 220, 2537, 4868, 2658, 4877, 4922, 2768, 4885, 4930, 4966, 2867,
	4892, 4937, 4973, 5001, 2955, 3028, 3029, 3030, 3031, 3032, 232, 2538, 4869, 2659, 4878, 4923, 2769, 4886, 4931, 4967,
	2868, 4893, 4938, 4974, 5002, 2956, 4899, 4944, 4980, 5008, 5029, 3033, 3094, 3095, 3096, 3097, 3098, 3099, 244, 250,
	2071, 251, 2072, 2082, 252, 2073, 2083, 2092, 253, 2074, 2084, 2093, 2101, 254, 2075, 2085, 2094, 2102, 2109, 255,
	2076, 2086, 2095, 2103, 2110, 2116, 256, 94, 95, 96, 97, 98, 99, 100, 17, 1615, 2473, 1681, 29, 1625,
	3330, 3550, 1691, 2484, 3770, 2605, 1747, 1757, 41, 1634, 3339, 3559, 1700, 3384, 6188, 3604, 3779, 3824, 1766, 2495,
	3990, 2616, 3999, 4044, 2726, 1813, 1823, 1832, 53, 1642, 3347, 3567, 1708, 3392, 6196, 3612, 3787, 3832, 1774, 3428,
	6232, 3648, 6352, 6680, 3868, 4007, 4052, 4088, 1840, 2506, 4210, 2627, 4219, 4264, 2737, 4227, 4272, 4308, 2836, 1879,
	1889, 1898, 1906, 65, 1649, 3354, 3574, 1715, 3399, 6203, 3619, 3794, 3839, 1781, 3435, 6239, 3655, 6359, 6687, 3875,
	4014, 4059, 4095, 1847, 3463, 6267, 3683, 6387, 6715, 3903, 6471, 6799, 7008, 4123, 4234, 4279, 4315, 4343, 1913, 2517,
	4430, 2638, 4439, 4484, 2748, 4447, 4492, 4528, 2847, 4454, 4499, 4535, 4563, 2935, 1945, 1955, 1964, 1972, 1979, 77,
	1655, 3360, 3580, 1721, 3405, 6209, 3625, 3800, 3845, 1787, 3441, 6245, 3661, 6365, 6693, 3881, 4020, 4065, 4101, 1853,
	3469, 6273, 3689, 6393, 6721, 3909, 6477, 6805, 7014, 4129, 4240, 4285, 4321, 4349, 1919, 3490, 6294, 3710, 6414, 6742,
	3930, 6498, 6826, 7035, 4150, 6554, 6882, 7091, 7216, 4370, 4460, 4505, 4541, 4569, 4590, 1985, 2528, 4650, 2649, 4659,
	4704, 2759, 4667, 4712, 4748, 2858, 4674, 4719, 4755, 4783, 2946, 4680, 4725, 4761, 4789, 4810, 3023, 2011, 2021, 2030,
	2038, 2045, 2051, 89, 1660, 3365, 3585, 1726, 3410, 6214, 3630, 3805, 3850, 1792, 3446, 6250, 3666, 6370, 6698, 3886,
	4025, 4070, 4106, 1858, 3474, 6278, 3694, 6398, 6726, 3914, 6482, 6810, 7019, 4134, 4245, 4290, 4326, 4354, 1924, 3495,
	6299, 3715, 6419, 6747, 3935, 6503, 6831, 7040, 4155, 6559, 6887, 7096, 7221, 4375, 4465, 4510, 4546, 4574, 4595, 1990,
	3510, 6314, 3730, 6434, 6762, 3950, 6518, 6846, 7055, 4170, 6574, 6902, 7111, 7236, 4390, 1604, 1604, 1604, 1604, 1603,
	1604, 4685, 4730, 4766, 4794, 4815, 1604, 2056, 2539, 4870, 2660, 4879, 4924, 2770, 4887, 4932, 4968, 2869, 4894, 4939,
	4975, 5003, 2957, 4900, 4945, 4981, 5009, 5030, 3034, 4905, 4950, 4986, 5014, 5035, 1604, 3100, 2077, 2087, 2096, 2104,
	2111, 2117, 2122, 101, 173, 2544, 2665, 185, 2545, 5085, 2666, 2775, 2776, 197, 2546, 5086, 2667, 5095, 5140, 2777,
	2874, 2875, 2876, 209, 2547, 5087, 2668, 5096, 5141, 2778, 5104, 5149, 5185, 2877, 2962, 2963, 2964, 2965, 221, 2548,
	5088, 2669, 5097, 5142, 2779, 5105, 5150, 5186, 2878, 5112, 5157, 5193, 5221, 2966, 3039, 3040, 3041, 3042, 3043, 233,
	2549, 5089, 2670, 5098, 5143, 2780, 5106, 5151, 5187, 2879, 5113, 5158, 5194, 5222, 2967, 5119, 5164, 5200, 5228, 5249,
	3044, 3105, 3106, 3107, 3108, 3109, 3110, 245, 2550, 5090, 2671, 5099, 5144, 2781, 5107, 5152, 5188, 2880, 5114, 5159,
	5195, 5223, 2968, 5120, 5165, 5201, 5229, 5250, 3045, 5125, 5170, 5206, 5234, 5255, 1604, 3111, 3160, 3161, 3162, 3163,
	3164, 3165, 3166, 257, 262, 2137, 263, 2138, 2148, 264, 2139, 2149, 2158, 265, 2140, 2150, 2159, 2167, 266, 2141,
	2151, 2160, 2168, 2175, 267, 2142, 2152, 2161, 2169, 2176, 2182, 268, 2143, 2153, 2162, 2170, 2177, 2183, 2188, 269,
	106, 107, 108, 109, 110, 111, 112, 113, 18, 174, 2474, 186, 30, 174, 2555, 2676, 186, 2485, 2786, 2606,
	198, 198, 42, 174, 2555, 2676, 186, 2556, 5305, 2677, 2786, 2787, 198, 2496, 2885, 2617, 2885, 2886, 2727, 210,
	210, 210, 54, 174, 2555, 2676, 186, 2556, 5305, 2677, 2786, 2787, 198, 2557, 5306, 2678, 5315, 5360, 2788, 2885,
	2886, 2887, 210, 2507, 2973, 2628, 2973, 2974, 2738, 2973, 2974, 2975, 2837, 222, 222, 222, 222, 66, 174, 2555,
	2676, 186, 2556, 5305, 2677, 2786, 2787, 198, 2557, 5306, 2678, 5315, 5360, 2788, 2885, 2886, 2887, 210, 2558, 5307,
	2679, 5316, 5361, 2789, 5324, 5369, 5405, 2888, 2973, 2974, 2975, 2976, 222, 2518, 3050, 2639, 3050, 3051, 2749, 3050,
	3051, 3052, 2848, 3050, 3051, 3052, 3053, 2936, 234, 234, 234, 234, 234, 78, 174, 2555, 2676, 186, 2556, 5305,
	2677, 2786, 2787, 198, 2557, 5306, 2678, 5315, 5360, 2788, 2885, 2886, 2887, 210, 2558, 5307, 2679, 5316, 5361, 2789,
	5324, 5369, 5405, 2888, 2973, 2974, 2975, 2976, 222, 2559, 5308, 2680, 5317, 5362, 2790, 5325, 5370, 5406, 2889, 5332,
	5377, 5413, 5441, 2977, 3050, 3051, 3052, 3053, 3054, 234, 2529, 3116, 2650, 3116, 3117, 2760, 3116, 3117, 3118, 2859,
	3116, 3117, 3118, 3119, 2947, 3116, 3117, 3118, 3119, 3120, 3024, 246, 246, 246, 246, 246, 246, 90, 174, 2555,
	2676, 186, 2556, 5305, 2677, 2786, 2787, 198, 2557, 5306, 2678, 5315, 5360, 2788, 2885, 2886, 2887, 210, 2558, 5307,
	2679, 5316, 5361, 2789, 5324, 5369, 5405, 2888, 2973, 2974, 2975, 2976, 222, 2559, 5308, 2680, 5317, 5362, 2790, 5325,
	5370, 5406, 2889, 5332, 5377, 5413, 5441, 2977, 3050, 3051, 3052, 3053, 3054, 234, 2560, 5309, 2681, 5318, 5363, 2791,
	5326, 5371, 5407, 2890, 5333, 5378, 5414, 5442, 2978, 5339, 5384, 5420, 5448, 5469, 3055, 3116, 3117, 3118, 3119, 3120,
	3121, 246, 2540, 3171, 2661, 3171, 3172, 2771, 3171, 3172, 3173, 2870, 3171, 3172, 3173, 3174, 2958, 3171, 3172, 3173,
	3174, 3175, 3035, 3171, 3172, 3173, 3174, 3175, 3176, 3101, 258, 258, 258, 258, 258, 258, 258, 102, 174, 2555,
	2676, 186, 2556, 5305, 2677, 2786, 2787, 198, 2557, 5306, 2678, 5315, 5360, 2788, 2885, 2886, 2887, 210, 2558, 5307,
	2679, 5316, 5361, 2789, 5324, 5369, 5405, 2888, 2973, 2974, 2975, 2976, 222, 2559, 5308, 2680, 5317, 5362, 2790, 5325,
	5370, 5406, 2889, 5332, 5377, 5413, 5441, 2977, 3050, 3051, 3052, 3053, 3054, 234, 2560, 5309, 2681, 5318, 5363, 2791,
	5326, 5371, 5407, 2890, 5333, 5378, 5414, 5442, 2978, 5339, 5384, 5420, 5448, 5469, 3055, 3116, 3117, 3118, 3119, 3120,
	3121, 246, 2561, 5310, 2682, 5319, 5364, 2792, 5327, 5372, 5408, 2891, 5334, 5379, 5415, 5443, 2979, 5340, 5385, 5421,
	5449, 5470, 3056, 5345, 5390, 5426, 5454, 5475, 1604, 3122, 3171, 3172, 3173, 3174, 3175, 3176, 3177, 258, 2551, 3215,
	2672, 3215, 3216, 2782, 3215, 3216, 3217, 2881, 3215, 3216, 3217, 3218, 2969, 3215, 3216, 3217, 3218, 3219, 3046, 3215,
	3216, 3217, 3218, 3219, 3220, 3112, 3215, 3216, 3217, 3218, 3219, 3220, 3221, 3167, 270, 270, 270, 270, 270, 270,
	270, 270, 114, 174, 274, 275, 186, 274, 2203, 275, 276, 276, 198, 274, 2203, 275, 2204, 2214, 276, 277,
	277, 277, 210, 274, 2203, 275, 2204, 2214, 276, 2205, 2215, 2224, 277, 278, 278, 278, 278, 222, 274, 2203,
	275, 2204, 2214, 276, 2205, 2215, 2224, 277, 2206, 2216, 2225, 2233, 278, 279, 279, 279, 279, 279, 234, 274,
	2203, 275, 2204, 2214, 276, 2205, 2215, 2224, 277, 2206, 2216, 2225, 2233, 278, 2207, 2217, 2226, 2234, 2241, 279,
	280, 280, 280, 280, 280, 280, 246, 274, 2203, 275, 2204, 2214, 276, 2205, 2215, 2224, 277, 2206, 2216, 2225,
	2233, 278, 2207, 2217, 2226, 2234, 2241, 279, 2208, 2218, 2227, 2235, 2242, 2248, 280, 281, 281, 281, 281, 281,
	281, 281, 258, 274, 2203, 275, 2204, 2214, 276, 2205, 2215, 2224, 277, 2206, 2216, 2225, 2233, 278, 2207, 2217,
	2226, 2234, 2241, 279, 2208, 2218, 2227, 2235, 2242, 2248, 280, 2209, 2219, 2228, 2236, 2243, 2249, 2254, 281, 282,
	282, 282, 282, 282, 282, 282, 282, 270, 118, 118, 119, 118, 119, 120, 118, 119, 120, 121, 118, 119,
	120, 121, 122, 118, 119, 120, 121, 122, 123, 118, 119, 120, 121, 122, 123, 124, 118, 119, 120, 121,
	122, 123, 124, 125, 118, 119, 120, 121, 122, 123, 124, 125, 126, 10, 166, 178, 22, 11, 1609, 2467,
	1675, 23, 167, 2478, 2599, 179, 190, 1741, 191, 34, 35, 12, 1610, 2468, 1676, 24, 1620, 3325, 3545, 1686,
	2479, 3765, 2600, 1742, 1752, 36, 168, 2489, 2610, 180, 2490, 3985, 2611, 2720, 2721, 192, 202, 1807, 203, 1808,
	1818, 204, 46, 47, 48, 13, 1611, 2469, 1677, 25, 1621, 3326, 3546, 1687, 2480, 3766, 2601, 1743, 1753, 37,
	1630, 3335, 3555, 1696, 3380, 1599, 3600, 3775, 3820, 1762, 2491, 3986, 2612, 3995, 4040, 2722, 1809, 1819, 1828, 49,
	169, 2500, 2621, 181, 2501, 4205, 2622, 2731, 2732, 193, 2502, 4206, 2623, 4215, 4260, 2733, 2830, 2831, 2832, 205,
	214, 1873, 215, 1874, 1884, 216, 1875, 1885, 1894, 217, 58, 59, 60, 61, 14, 1612, 2470, 1678, 26, 1622,
	3327, 3547, 1688, 2481, 3767, 2602, 1744, 1754, 38, 1631, 3336, 3556, 1697, 3381, 6185, 3601, 3776, 3821, 1763, 2492,
	3987, 2613, 3996, 4041, 2723, 1810, 1820, 1829, 50, 1639, 3344, 3564, 1705, 3389, 6193, 3609, 3784, 3829, 1771, 3425,
	6229, 3645, 6349, 1600, 3865, 4004, 4049, 4085, 1837, 2503, 4207, 2624, 4216, 4261, 2734, 4224, 4269, 4305, 2833, 1876,
	1886, 1895, 1903, 62, 170, 2511, 2632, 182, 2512, 4425, 2633, 2742, 2743, 194, 2513, 4426, 2634, 4435, 4480, 2744,
	2841, 2842, 2843, 206, 2514, 4427, 2635, 4436, 4481, 2745, 4444, 4489, 4525, 2844, 2929, 2930, 2931, 2932, 218, 226,
	1939, 227, 1940, 1950, 228, 1941, 1951, 1960, 229, 1942, 1952, 1961, 1969, 230, 70, 71, 72, 73, 74, 15,
	1613, 2471, 1679, 27, 1623, 3328, 3548, 1689, 2482, 3768, 2603, 1745, 1755, 39, 1632, 3337, 3557, 1698, 3382, 6186,
	3602, 3777, 3822, 1764, 2493, 3988, 2614, 3997, 4042, 2724, 1811, 1821, 1830, 51, 1640, 3345, 3565, 1706, 3390, 6194,
	3610, 3785, 3830, 1772, 3426, 6230, 3646, 6350, 6678, 3866, 4005, 4050, 4086, 1838, 2504, 4208, 2625, 4217, 4262, 2735,
	4225, 4270, 4306, 2834, 1877, 1887, 1896, 1904, 63, 1647, 3352, 3572, 1713, 3397, 6201, 3617, 3792, 3837, 1779, 3433,
	6237, 3653, 6357, 6685, 3873, 4012, 4057, 4093, 1845, 3461, 6265, 3681, 6385, 6713, 3901, 6469, 6797, 1601, 4121, 4232,
	4277, 4313, 4341, 1911, 2515, 4428, 2636, 4437, 4482, 2746, 4445, 4490, 4526, 2845, 4452, 4497, 4533, 4561, 2933, 1943,
	1953, 1962, 1970, 1977, 75, 171, 2522, 2643, 183, 2523, 4645, 2644, 2753, 2754, 195, 2524, 4646, 2645, 4655, 4700,
	2755, 2852, 2853, 2854, 207, 2525, 4647, 2646, 4656, 4701, 2756, 4664, 4709, 4745, 2855, 2940, 2941, 2942, 2943, 219,
	2526, 4648, 2647, 4657, 4702, 2757, 4665, 4710, 4746, 2856, 4672, 4717, 4753, 4781, 2944, 3017, 3018, 3019, 3020, 3021,
	231, 238, 2005, 239, 2006, 2016, 240, 2007, 2017, 2026, 241, 2008, 2018, 2027, 2035, 242, 2009, 2019, 2028, 2036,
	2043, 243, 82, 83, 84, 85, 86, 87, 16, 1614, 2472, 1680, 28, 1624, 3329, 3549, 1690, 2483, 3769, 2604,
	1746, 1756, 40, 1633, 3338, 3558, 1699, 3383, 6187, 3603, 3778, 3823, 1765, 2494, 3989, 2615, 3998, 4043, 2725, 1812,
	1822, 1831, 52, 1641, 3346, 3566, 1707, 3391, 6195, 3611, 3786, 3831, 1773, 3427, 6231, 3647, 6351, 6679, 3867, 4006,
	4051, 4087, 1839, 2505, 4209, 2626, 4218, 4263, 2736, 4226, 4271, 4307, 2835, 1878, 1888, 1897, 1905, 64, 1648, 3353,
	3573, 1714, 3398, 6202, 3618, 3793, 3838, 1780, 3434, 6238, 3654, 6358, 6686, 3874, 4013, 4058, 4094, 1846, 3462, 6266,
	3682, 6386, 6714, 3902, 6470, 6798, 7007, 4122, 4233, 4278, 4314, 4342, 1912, 2516, 4429, 2637, 4438, 4483, 2747, 4446,
	4491, 4527, 2846, 4453, 4498, 4534, 4562, 2934, 1944, 1954, 1963, 1971, 1978, 76, 1654, 3359, 3579, 1720, 3404, 6208,
	3624, 3799, 3844, 1786, 3440, 6244, 3660, 6364, 6692, 3880, 4019, 4064, 4100, 1852, 3468, 6272, 3688, 6392, 6720, 3908,
	6476, 6804, 7013, 4128, 4239, 4284, 4320, 4348, 1918, 3489, 6293, 3709, 6413, 6741, 3929, 6497, 6825, 7034, 4149, 6553,
	6881, 7090, 1602, 4369, 4459, 4504, 4540, 4568, 4589, 1984, 2527, 4649, 2648, 4658, 4703, 2758, 4666, 4711, 4747, 2857,
	4673, 4718, 4754, 4782, 2945, 4679, 4724, 4760, 4788, 4809, 3022, 2010, 2020, 2029, 2037, 2044, 2050, 88, 172, 2533,
	2654, 184, 2534, 4865, 2655, 2764, 2765, 196, 2535, 4866, 2656, 4875, 4920, 2766, 2863, 2864, 2865, 208, 2536, 4867,
	2657, 4876, 4921, 2767, 4884, 4929, 4965, 2866, 2951, 2952, 2953, 2954, 220, 2537, 4868, 2658, 4877, 4922, 2768, 4885,
	4930, 4966, 2867, 4892, 4937, 4973, 5001, 2955, 3028, 3029, 3030, 3031, 3032, 232, 2538, 4869, 2659, 4878, 4923, 2769,
	4886, 4931, 4967, 2868, 4893, 4938, 4974, 5002, 2956, 4899, 4944, 4980, 5008, 5029, 3033, 3094, 3095, 3096, 3097, 3098,
	3099, 244, 250, 2071, 251, 2072, 2082, 252, 2073, 2083, 2092, 253, 2074, 2084, 2093, 2101, 254, 2075, 2085, 2094,
	2102, 2109, 255, 2076, 2086, 2095, 2103, 2110, 2116, 256, 94, 95, 96, 97, 98, 99, 100, 17, 1615, 2473,
	1681, 29, 1625, 3330, 3550, 1691, 2484, 3770, 2605, 1747, 1757, 41, 1634, 3339, 3559, 1700, 3384, 6188, 3604, 3779,
	3824, 1766, 2495, 3990, 2616, 3999, 4044, 2726, 1813, 1823, 1832, 53, 1642, 3347, 3567, 1708, 3392, 6196, 3612, 3787,
	3832, 1774, 3428, 6232, 3648, 6352, 6680, 3868, 4007, 4052, 4088, 1840, 2506, 4210, 2627, 4219, 4264, 2737, 4227, 4272,
	4308, 2836, 1879, 1889, 1898, 1906, 65, 1649, 3354, 3574, 1715, 3399, 6203, 3619, 3794, 3839, 1781, 3435, 6239, 3655,
	6359, 6687, 3875, 4014, 4059, 4095, 1847, 3463, 6267, 3683, 6387, 6715, 3903, 6471, 6799, 7008, 4123, 4234, 4279, 4315,
	4343, 1913, 2517, 4430, 2638, 4439, 4484, 2748, 4447, 4492, 4528, 2847, 4454, 4499, 4535, 4563, 2935, 1945, 1955, 1964,
	1972, 1979, 77, 1655, 3360, 3580, 1721, 3405, 6209, 3625, 3800, 3845, 1787, 3441, 6245, 3661, 6365, 6693, 3881, 4020,
	4065, 4101, 1853, 3469, 6273, 3689, 6393, 6721, 3909, 6477, 6805, 7014, 4129, 4240, 4285, 4321, 4349, 1919, 3490, 6294,
	3710, 6414, 6742, 3930, 6498, 6826, 7035, 4150, 6554, 6882, 7091, 7216, 4370, 4460, 4505, 4541, 4569, 4590, 1985, 2528,
	4650, 2649, 4659, 4704, 2759, 4667, 4712, 4748, 2858, 4674, 4719, 4755, 4783, 2946, 4680, 4725, 4761, 4789, 4810, 3023,
	2011, 2021, 2030, 2038, 2045, 2051, 89, 1660, 3365, 3585, 1726, 3410, 6214, 3630, 3805, 3850, 1792, 3446, 6250, 3666,
	6370, 6698, 3886, 4025, 4070, 4106, 1858, 3474, 6278, 3694, 6398, 6726, 3914, 6482, 6810, 7019, 4134, 4245, 4290, 4326,
	4354, 1924, 3495, 6299, 3715, 6419, 6747, 3935, 6503, 6831, 7040, 4155, 6559, 6887, 7096, 7221, 4375, 4465, 4510, 4546,
	4574, 4595, 1990, 3510, 6314, 3730, 6434, 6762, 3950, 6518, 6846, 7055, 4170, 6574, 6902, 7111, 7236, 4390, 6609, 6937,
	7146, 7271, 1603, 4610, 4685, 4730, 4766, 4794, 4815, 4830, 2056, 2539, 4870, 2660, 4879, 4924, 2770, 4887, 4932, 4968,
	2869, 4894, 4939, 4975, 5003, 2957, 4900, 4945, 4981, 5009, 5030, 3034, 4905, 4950, 4986, 5014, 5035, 5050, 3100, 2077,
	2087, 2096, 2104, 2111, 2117, 2122, 101, 173, 2544, 2665, 185, 2545, 5085, 2666, 2775, 2776, 197, 2546, 5086, 2667,
	5095, 5140, 2777, 2874, 2875, 2876, 209, 2547, 5087, 2668, 5096, 5141, 2778, 5104, 5149, 5185, 2877, 2962, 2963, 2964,
	2965, 221, 2548, 5088, 2669, 5097, 5142, 2779, 5105, 5150, 5186, 2878, 5112, 5157, 5193, 5221, 2966, 3039, 3040, 3041,
	3042, 3043, 233, 2549, 5089, 2670, 5098, 5143, 2780, 5106, 5151, 5187, 2879, 5113, 5158, 5194, 5222, 2967, 5119, 5164,
	5200, 5228, 5249, 3044, 3105, 3106, 3107, 3108, 3109, 3110, 245, 2550, 5090, 2671, 5099, 5144, 2781, 5107, 5152, 5188,
	2880, 5114, 5159, 5195, 5223, 2968, 5120, 5165, 5201, 5229, 5250, 3045, 5125, 5170, 5206, 5234, 5255, 5270, 3111, 3160,
	3161, 3162, 3163, 3164, 3165, 3166, 257, 262, 2137, 263, 2138, 2148, 264, 2139, 2149, 2158, 265, 2140, 2150, 2159,
	2167, 266, 2141, 2151, 2160, 2168, 2175, 267, 2142, 2152, 2161, 2169, 2176, 2182, 268, 2143, 2153, 2162, 2170, 2177,
	2183, 2188, 269, 106, 107, 108, 109, 110, 111, 112, 113, 18, 1616, 2474, 1682, 30, 1626, 3331, 3551, 1692,
	2485, 3771, 2606, 1748, 1758, 42, 1635, 3340, 3560, 1701, 3385, 6189, 3605, 3780, 3825, 1767, 2496, 3991, 2617, 4000,
	4045, 2727, 1814, 1824, 1833, 54, 1643, 3348, 3568, 1709, 3393, 6197, 3613, 3788, 3833, 1775, 3429, 6233, 3649, 6353,
	6681, 3869, 4008, 4053, 4089, 1841, 2507, 4211, 2628, 4220, 4265, 2738, 4228, 4273, 4309, 2837, 1880, 1890, 1899, 1907,
	66, 1650, 3355, 3575, 1716, 3400, 6204, 3620, 3795, 3840, 1782, 3436, 6240, 3656, 6360, 6688, 3876, 4015, 4060, 4096,
	1848, 3464, 6268, 3684, 6388, 6716, 3904, 6472, 6800, 7009, 4124, 4235, 4280, 4316, 4344, 1914, 2518, 4431, 2639, 4440,
	4485, 2749, 4448, 4493, 4529, 2848, 4455, 4500, 4536, 4564, 2936, 1946, 1956, 1965, 1973, 1980, 78, 1656, 3361, 3581,
	1722, 3406, 6210, 3626, 3801, 3846, 1788, 3442, 6246, 3662, 6366, 6694, 3882, 4021, 4066, 4102, 1854, 3470, 6274, 3690,
	6394, 6722, 3910, 6478, 6806, 7015, 4130, 4241, 4286, 4322, 4350, 1920, 3491, 6295, 3711, 6415, 6743, 3931, 6499, 6827,
	7036, 4151, 6555, 6883, 7092, 7217, 4371, 4461, 4506, 4542, 4570, 4591, 1986, 2529, 4651, 2650, 4660, 4705, 2760, 4668,
	4713, 4749, 2859, 4675, 4720, 4756, 4784, 2947, 4681, 4726, 4762, 4790, 4811, 3024, 2012, 2022, 2031, 2039, 2046, 2052,
	90, 1661, 3366, 3586, 1727, 3411, 6215, 3631, 3806, 3851, 1793, 3447, 6251, 3667, 6371, 6699, 3887, 4026, 4071, 4107,
	1859, 3475, 6279, 3695, 6399, 6727, 3915, 6483, 6811, 7020, 4135, 4246, 4291, 4327, 4355, 1925, 3496, 6300, 3716, 6420,
	6748, 3936, 6504, 6832, 7041, 4156, 6560, 6888, 7097, 7222, 4376, 4466, 4511, 4547, 4575, 4596, 1991, 3511, 6315, 3731,
	6435, 6763, 3951, 6519, 6847, 7056, 4171, 6575, 6903, 7112, 7237, 4391, 6610, 6938, 7147, 7272, 7341, 4611, 4686, 4731,
	4767, 4795, 4816, 4831, 2057, 2540, 4871, 2661, 4880, 4925, 2771, 4888, 4933, 4969, 2870, 4895, 4940, 4976, 5004, 2958,
	4901, 4946, 4982, 5010, 5031, 3035, 4906, 4951, 4987, 5015, 5036, 5051, 3101, 2078, 2088, 2097, 2105, 2112, 2118, 2123,
	102, 1665, 3370, 3590, 1731, 3415, 6219, 3635, 3810, 3855, 1797, 3451, 6255, 3671, 6375, 6703, 3891, 4030, 4075, 4111,
	1863, 3479, 6283, 3699, 6403, 6731, 3919, 6487, 6815, 7024, 4139, 4250, 4295, 4331, 4359, 1929, 3500, 6304, 3720, 6424,
	6752, 3940, 6508, 6836, 7045, 4160, 6564, 6892, 7101, 7226, 4380, 4470, 4515, 4551, 4579, 4600, 1995, 3515, 6319, 3735,
	6439, 6767, 3955, 6523, 6851, 7060, 4175, 6579, 6907, 7116, 7241, 4395, 6614, 6942, 7151, 7276, 7345, 4615, 4690, 4735,
	4771, 4799, 4820, 4835, 2061, 3525, 6329, 3745, 6449, 6777, 3965, 6533, 6861, 7070, 4185, 6589, 6917, 7126, 7251, 4405,
	6624, 6952, 7161, 7286, 7355, 4625, 1605, 1605, 1605, 1605, 1605, 1604, 1605, 4910, 4955, 4991, 5019, 5040, 5055, 1605,
	2127, 2551, 5091, 2672, 5100, 5145, 2782, 5108, 5153, 5189, 2881, 5115, 5160, 5196, 5224, 2969, 5121, 5166, 5202, 5230,
	5251, 3046, 5126, 5171, 5207, 5235, 5256, 5271, 3112, 5130, 5175, 5211, 5239, 5260, 5275, 1605, 3167, 2144, 2154, 2163,
	2171, 2178, 2184, 2189, 2193, 114, 174, 2555, 2676, 186, 2556, 5305, 2677, 2786, 2787, 198, 2557, 5306, 2678, 5315,
	5360, 2788, 2885, 2886, 2887, 210, 2558, 5307, 2679, 5316, 5361, 2789, 5324, 5369, 5405, 2888, 2973, 2974, 2975, 2976,
	222, 2559, 5308, 2680, 5317, 5362, 2790, 5325, 5370, 5406, 2889, 5332, 5377, 5413, 5441, 2977, 3050, 3051, 3052, 3053,
	3054, 234, 2560, 5309, 2681, 5318, 5363, 2791, 5326, 5371, 5407, 2890, 5333, 5378, 5414, 5442, 2978, 5339, 5384, 5420,
	5448, 5469, 3055, 3116, 3117, 3118, 3119, 3120, 3121, 246, 2561, 5310, 2682, 5319, 5364, 2792, 5327, 5372, 5408, 2891,
	5334, 5379, 5415, 5443, 2979, 5340, 5385, 5421, 5449, 5470, 3056, 5345, 5390, 5426, 5454, 5475, 5490, 3122, 3171, 3172,
	3173, 3174, 3175, 3176, 3177, 258, 2562, 5311, 2683, 5320, 5365, 2793, 5328, 5373, 5409, 2892, 5335, 5380, 5416, 5444,
	2980, 5341, 5386, 5422, 5450, 5471, 3057, 5346, 5391, 5427, 5455, 5476, 5491, 3123, 5350, 5395, 5431, 5459, 5480, 5495,
	1605, 3178, 3215, 3216, 3217, 3218, 3219, 3220, 3221, 3222, 270, 274, 2203, 275, 2204, 2214, 276, 2205, 2215, 2224,
	277, 2206, 2216, 2225, 2233, 278, 2207, 2217, 2226, 2234, 2241, 279, 2208, 2218, 2227, 2235, 2242, 2248, 280, 2209,
	2219, 2228, 2236, 2243, 2249, 2254, 281, 2210, 2220, 2229, 2237, 2244, 2250, 2255, 2259, 282, 118, 119, 120, 121,
	122, 123, 124, 125, 126, 19, 175, 2475, 187, 31, 175, 2566, 2687, 187, 2486, 2797, 2607, 199, 199, 43,
	175, 2566, 2687, 187, 2567, 5525, 2688, 2797, 2798, 199, 2497, 2896, 2618, 2896, 2897, 2728, 211, 211, 211, 55,
	175, 2566, 2687, 187, 2567, 5525, 2688, 2797, 2798, 199, 2568, 5526, 2689, 5535, 5580, 2799, 2896, 2897, 2898, 211,
	2508, 2984, 2629, 2984, 2985, 2739, 2984, 2985, 2986, 2838, 223, 223, 223, 223, 67, 175, 2566, 2687, 187, 2567,
	5525, 2688, 2797, 2798, 199, 2568, 5526, 2689, 5535, 5580, 2799, 2896, 2897, 2898, 211, 2569, 5527, 2690, 5536, 5581,
	2800, 5544, 5589, 5625, 2899, 2984, 2985, 2986, 2987, 223, 2519, 3061, 2640, 3061, 3062, 2750, 3061, 3062, 3063, 2849,
	3061, 3062, 3063, 3064, 2937, 235, 235, 235, 235, 235, 79, 175, 2566, 2687, 187, 2567, 5525, 2688, 2797, 2798,
	199, 2568, 5526, 2689, 5535, 5580, 2799, 2896, 2897, 2898, 211, 2569, 5527, 2690, 5536, 5581, 2800, 5544, 5589, 5625,
	2899, 2984, 2985, 2986, 2987, 223, 2570, 5528, 2691, 5537, 5582, 2801, 5545, 5590, 5626, 2900, 5552, 5597, 5633, 5661,
	2988, 3061, 3062, 3063, 3064, 3065, 235, 2530, 3127, 2651, 3127, 3128, 2761, 3127, 3128, 3129, 2860, 3127, 3128, 3129,
	3130, 2948, 3127, 3128, 3129, 3130, 3131, 3025, 247, 247, 247, 247, 247, 247, 91, 175, 2566, 2687, 187, 2567,
	5525, 2688, 2797, 2798, 199, 2568, 5526, 2689, 5535, 5580, 2799, 2896, 2897, 2898, 211, 2569, 5527, 2690, 5536, 5581,
	2800, 5544, 5589, 5625, 2899, 2984, 2985, 2986, 2987, 223, 2570, 5528, 2691, 5537, 5582, 2801, 5545, 5590, 5626, 2900,
	5552, 5597, 5633, 5661, 2988, 3061, 3062, 3063, 3064, 3065, 235, 2571, 5529, 2692, 5538, 5583, 2802, 5546, 5591, 5627,
	2901, 5553, 5598, 5634, 5662, 2989, 5559, 5604, 5640, 5668, 5689, 3066, 3127, 3128, 3129, 3130, 3131, 3132, 247, 2541,
	3182, 2662, 3182, 3183, 2772, 3182, 3183, 3184, 2871, 3182, 3183, 3184, 3185, 2959, 3182, 3183, 3184, 3185, 3186, 3036,
	3182, 3183, 3184, 3185, 3186, 3187, 3102, 259, 259, 259, 259, 259, 259, 259, 103, 175, 2566, 2687, 187, 2567,
	5525, 2688, 2797, 2798, 199, 2568, 5526, 2689, 5535, 5580, 2799, 2896, 2897, 2898, 211, 2569, 5527, 2690, 5536, 5581,
	2800, 5544, 5589, 5625, 2899, 2984, 2985, 2986, 2987, 223, 2570, 5528, 2691, 5537, 5582, 2801, 5545, 5590, 5626, 2900,
	5552, 5597, 5633, 5661, 2988, 3061, 3062, 3063, 3064, 3065, 235, 2571, 5529, 2692, 5538, 5583, 2802, 5546, 5591, 5627,
	2901, 5553, 5598, 5634, 5662, 2989, 5559, 5604, 5640, 5668, 5689, 3066, 3127, 3128, 3129, 3130, 3131, 3132, 247, 2572,
	5530, 2693, 5539, 5584, 2803, 5547, 5592, 5628, 2902, 5554, 5599, 5635, 5663, 2990, 5560, 5605, 5641, 5669, 5690, 3067,
	5565, 5610, 5646, 5674, 5695, 5710, 3133, 3182, 3183, 3184, 3185, 3186, 3187, 3188, 259, 2552, 3226, 2673, 3226, 3227,
	2783, 3226, 3227, 3228, 2882, 3226, 3227, 3228, 3229, 2970, 3226, 3227, 3228, 3229, 3230, 3047, 3226, 3227, 3228, 3229,
	3230, 3231, 3113, 3226, 3227, 3228, 3229, 3230, 3231, 3232, 3168, 271, 271, 271, 271, 271, 271, 271, 271, 115,
	175, 2566, 2687, 187, 2567, 5525, 2688, 2797, 2798, 199, 2568, 5526, 2689, 5535, 5580, 2799, 2896, 2897, 2898, 211,
	2569, 5527, 2690, 5536, 5581, 2800, 5544, 5589, 5625, 2899, 2984, 2985, 2986, 2987, 223, 2570, 5528, 2691, 5537, 5582,
	2801, 5545, 5590, 5626, 2900, 5552, 5597, 5633, 5661, 2988, 3061, 3062, 3063, 3064, 3065, 235, 2571, 5529, 2692, 5538,
	5583, 2802, 5546, 5591, 5627, 2901, 5553, 5598, 5634, 5662, 2989, 5559, 5604, 5640, 5668, 5689, 3066, 3127, 3128, 3129,
	3130, 3131, 3132, 247, 2572, 5530, 2693, 5539, 5584, 2803, 5547, 5592, 5628, 2902, 5554, 5599, 5635, 5663, 2990, 5560,
	5605, 5641, 5669, 5690, 3067, 5565, 5610, 5646, 5674, 5695, 5710, 3133, 3182, 3183, 3184, 3185, 3186, 3187, 3188, 259,
	2573, 5531, 2694, 5540, 5585, 2804, 5548, 5593, 5629, 2903, 5555, 5600, 5636, 5664, 2991, 5561, 5606, 5642, 5670, 5691,
	3068, 5566, 5611, 5647, 5675, 5696, 5711, 3134, 5570, 5615, 5651, 5679, 5700, 5715, 1605, 3189, 3226, 3227, 3228, 3229,
	3230, 3231, 3232, 3233, 271, 2563, 3259, 2684, 3259, 3260, 2794, 3259, 3260, 3261, 2893, 3259, 3260, 3261, 3262, 2981,
	3259, 3260, 3261, 3262, 3263, 3058, 3259, 3260, 3261, 3262, 3263, 3264, 3124, 3259, 3260, 3261, 3262, 3263, 3264, 3265,
	3179, 3259, 3260, 3261, 3262, 3263, 3264, 3265, 3266, 3223, 283, 283, 283, 283, 283, 283, 283, 283, 283, 127,
	175, 286, 287, 187, 286, 2269, 287, 288, 288, 199, 286, 2269, 287, 2270, 2280, 288, 289, 289, 289, 211,
	286, 2269, 287, 2270, 2280, 288, 2271, 2281, 2290, 289, 290, 290, 290, 290, 223, 286, 2269, 287, 2270, 2280,
	288, 2271, 2281, 2290, 289, 2272, 2282, 2291, 2299, 290, 291, 291, 291, 291, 291, 235, 286, 2269, 287, 2270,
	2280, 288, 2271, 2281, 2290, 289, 2272, 2282, 2291, 2299, 290, 2273, 2283, 2292, 2300, 2307, 291, 292, 292, 292,
	292, 292, 292, 247, 286, 2269, 287, 2270, 2280, 288, 2271, 2281, 2290, 289, 2272, 2282, 2291, 2299, 290, 2273,
	2283, 2292, 2300, 2307, 291, 2274, 2284, 2293, 2301, 2308, 2314, 292, 293, 293, 293, 293, 293, 293, 293, 259,
	286, 2269, 287, 2270, 2280, 288, 2271, 2281, 2290, 289, 2272, 2282, 2291, 2299, 290, 2273, 2283, 2292, 2300, 2307,
	291, 2274, 2284, 2293, 2301, 2308, 2314, 292, 2275, 2285, 2294, 2302, 2309, 2315, 2320, 293, 294, 294, 294, 294,
	294, 294, 294, 294, 271, 286, 2269, 287, 2270, 2280, 288, 2271, 2281, 2290, 289, 2272, 2282, 2291, 2299, 290,
	2273, 2283, 2292, 2300, 2307, 291, 2274, 2284, 2293, 2301, 2308, 2314, 292, 2275, 2285, 2294, 2302, 2309, 2315, 2320,
	293, 2276, 2286, 2295, 2303, 2310, 2316, 2321, 2325, 294, 295, 295, 295, 295, 295, 295, 295, 295, 295, 283,
	130, 130, 131, 130, 131, 132, 130, 131, 132, 133, 130, 131, 132, 133, 134, 130, 131, 132, 133, 134,
	135, 130, 131, 132, 133, 134, 135, 136, 130, 131, 132, 133, 134, 135, 136, 137, 130, 131, 132, 133,
	134, 135, 136, 137, 138, 130, 131, 132, 133, 134, 135, 136, 137, 138, 139, 10, 166, 178, 22, 11,
	1609, 2467, 1675, 23, 167, 2478, 2599, 179, 190, 1741, 191, 34, 35, 12, 1610, 2468, 1676, 24, 1620, 3325,
	3545, 1686, 2479, 3765, 2600, 1742, 1752, 36, 168, 2489, 2610, 180, 2490, 3985, 2611, 2720, 2721, 192, 202, 1807,
	203, 1808, 1818, 204, 46, 47, 48, 13, 1611, 2469, 1677, 25, 1621, 3326, 3546, 1687, 2480, 3766, 2601, 1743,
	1753, 37, 1630, 3335, 3555, 1696, 3380, 1599, 3600, 3775, 3820, 1762, 2491, 3986, 2612, 3995, 4040, 2722, 1809, 1819,
	1828, 49, 169, 2500, 2621, 181, 2501, 4205, 2622, 2731, 2732, 193, 2502, 4206, 2623, 4215, 4260, 2733, 2830, 2831,
	2832, 205, 214, 1873, 215, 1874, 1884, 216, 1875, 1885, 1894, 217, 58, 59, 60, 61, 14, 1612, 2470, 1678,
	26, 1622, 3327, 3547, 1688, 2481, 3767, 2602, 1744, 1754, 38, 1631, 3336, 3556, 1697, 3381, 6185, 3601, 3776, 3821,
	1763, 2492, 3987, 2613, 3996, 4041, 2723, 1810, 1820, 1829, 50, 1639, 3344, 3564, 1705, 3389, 6193, 3609, 3784, 3829,
	1771, 3425, 6229, 3645, 6349, 1600, 3865, 4004, 4049, 4085, 1837, 2503, 4207, 2624, 4216, 4261, 2734, 4224, 4269, 4305,
	2833, 1876, 1886, 1895, 1903, 62, 170, 2511, 2632, 182, 2512, 4425, 2633, 2742, 2743, 194, 2513, 4426, 2634, 4435,
	4480, 2744, 2841, 2842, 2843, 206, 2514, 4427, 2635, 4436, 4481, 2745, 4444, 4489, 4525, 2844, 2929, 2930, 2931, 2932,
	218, 226, 1939, 227, 1940, 1950, 228, 1941, 1951, 1960, 229, 1942, 1952, 1961, 1969, 230, 70, 71, 72, 73,
	74, 15, 1613, 2471, 1679, 27, 1623, 3328, 3548, 1689, 2482, 3768, 2603, 1745, 1755, 39, 1632, 3337, 3557, 1698,
	3382, 6186, 3602, 3777, 3822, 1764, 2493, 3988, 2614, 3997, 4042, 2724, 1811, 1821, 1830, 51, 1640, 3345, 3565, 1706,
	3390, 6194, 3610, 3785, 3830, 1772, 3426, 6230, 3646, 6350, 6678, 3866, 4005, 4050, 4086, 1838, 2504, 4208, 2625, 4217,
	4262, 2735, 4225, 4270, 4306, 2834, 1877, 1887, 1896, 1904, 63, 1647, 3352, 3572, 1713, 3397, 6201, 3617, 3792, 3837,
	1779, 3433, 6237, 3653, 6357, 6685, 3873, 4012, 4057, 4093, 1845, 3461, 6265, 3681, 6385, 6713, 3901, 6469, 6797, 1601,
	4121, 4232, 4277, 4313, 4341, 1911, 2515, 4428, 2636, 4437, 4482, 2746, 4445, 4490, 4526, 2845, 4452, 4497, 4533, 4561,
	2933, 1943, 1953, 1962, 1970, 1977, 75, 171, 2522, 2643, 183, 2523, 4645, 2644, 2753, 2754, 195, 2524, 4646, 2645,
	4655, 4700, 2755, 2852, 2853, 2854, 207, 2525, 4647, 2646, 4656, 4701, 2756, 4664, 4709, 4745, 2855, 2940, 2941, 2942,
	2943, 219, 2526, 4648, 2647, 4657, 4702, 2757, 4665, 4710, 4746, 2856, 4672, 4717, 4753, 4781, 2944, 3017, 3018, 3019,
	3020, 3021, 231, 238, 2005, 239, 2006, 2016, 240, 2007, 2017, 2026, 241, 2008, 2018, 2027, 2035, 242, 2009, 2019,
	2028, 2036, 2043, 243, 82, 83, 84, 85, 86, 87, 16, 1614, 2472, 1680, 28, 1624, 3329, 3549, 1690, 2483,
	3769, 2604, 1746, 1756, 40, 1633, 3338, 3558, 1699, 3383, 6187, 3603, 3778, 3823, 1765, 2494, 3989, 2615, 3998, 4043,
	2725, 1812, 1822, 1831, 52, 1641, 3346, 3566, 1707, 3391, 6195, 3611, 3786, 3831, 1773, 3427, 6231, 3647, 6351, 6679,
	3867, 4006, 4051, 4087, 1839, 2505, 4209, 2626, 4218, 4263, 2736, 4226, 4271, 4307, 2835, 1878, 1888, 1897, 1905, 64,
	1648, 3353, 3573, 1714, 3398, 6202, 3618, 3793, 3838, 1780, 3434, 6238, 3654, 6358, 6686, 3874, 4013, 4058, 4094, 1846,
	3462, 6266, 3682, 6386, 6714, 3902, 6470, 6798, 7007, 4122, 4233, 4278, 4314, 4342, 1912, 2516, 4429, 2637, 4438, 4483,
	2747, 4446, 4491, 4527, 2846, 4453, 4498, 4534, 4562, 2934, 1944, 1954, 1963, 1971, 1978, 76, 1654, 3359, 3579, 1720,
	3404, 6208, 3624, 3799, 3844, 1786, 3440, 6244, 3660, 6364, 6692, 3880, 4019, 4064, 4100, 1852, 3468, 6272, 3688, 6392,
	6720, 3908, 6476, 6804, 7013, 4128, 4239, 4284, 4320, 4348, 1918, 3489, 6293, 3709, 6413, 6741, 3929, 6497, 6825, 7034,
	4149, 6553, 6881, 7090, 1602, 4369, 4459, 4504, 4540, 4568, 4589, 1984, 2527, 4649, 2648, 4658, 4703, 2758, 4666, 4711,
	4747, 2857, 4673, 4718, 4754, 4782, 2945, 4679, 4724, 4760, 4788, 4809, 3022, 2010, 2020, 2029, 2037, 2044, 2050, 88,
	172, 2533, 2654, 184, 2534, 4865, 2655, 2764, 2765, 196, 2535, 4866, 2656, 4875, 4920, 2766, 2863, 2864, 2865, 208,
	2536, 4867, 2657, 4876, 4921, 2767, 4884, 4929, 4965, 2866, 2951, 2952, 2953, 2954, 220, 2537, 4868, 2658, 4877, 4922,
	2768, 4885, 4930, 4966, 2867, 4892, 4937, 4973, 5001, 2955, 3028, 3029, 3030, 3031, 3032, 232, 2538, 4869, 2659, 4878,
	4923, 2769, 4886, 4931, 4967, 2868, 4893, 4938, 4974, 5002, 2956, 4899, 4944, 4980, 5008, 5029, 3033, 3094, 3095, 3096,
	3097, 3098, 3099, 244, 250, 2071, 251, 2072, 2082, 252, 2073, 2083, 2092, 253, 2074, 2084, 2093, 2101, 254, 2075,
	2085, 2094, 2102, 2109, 255, 2076, 2086, 2095, 2103, 2110, 2116, 256, 94, 95, 96, 97, 98, 99, 100, 17,
	1615, 2473, 1681, 29, 1625, 3330, 3550, 1691, 2484, 3770, 2605, 1747, 1757, 41, 1634, 3339, 3559, 1700, 3384, 6188,
	3604, 3779, 3824, 1766, 2495, 3990, 2616, 3999, 4044, 2726, 1813, 1823, 1832, 53, 1642, 3347, 3567, 1708, 3392, 6196,
	3612, 3787, 3832, 1774, 3428, 6232, 3648, 6352, 6680, 3868, 4007, 4052, 4088, 1840, 2506, 4210, 2627, 4219, 4264, 2737,
	4227, 4272, 4308, 2836, 1879, 1889, 1898, 1906, 65, 1649, 3354, 3574, 1715, 3399, 6203, 3619, 3794, 3839, 1781, 3435,
	6239, 3655, 6359, 6687, 3875, 4014, 4059, 4095, 1847, 3463, 6267, 3683, 6387, 6715, 3903, 6471, 6799, 7008, 4123, 4234,
	4279, 4315, 4343, 1913, 2517, 4430, 2638, 4439, 4484, 2748, 4447, 4492, 4528, 2847, 4454, 4499, 4535, 4563, 2935, 1945,
	1955, 1964, 1972, 1979, 77, 1655, 3360, 3580, 1721, 3405, 6209, 3625, 3800, 3845, 1787, 3441, 6245, 3661, 6365, 6693,
	3881, 4020, 4065, 4101, 1853, 3469, 6273, 3689, 6393, 6721, 3909, 6477, 6805, 7014, 4129, 4240, 4285, 4321, 4349, 1919,
	3490, 6294, 3710, 6414, 6742, 3930, 6498, 6826, 7035, 4150, 6554, 6882, 7091, 7216, 4370, 4460, 4505, 4541, 4569, 4590,
	1985, 2528, 4650, 2649, 4659, 4704, 2759, 4667, 4712, 4748, 2858, 4674, 4719, 4755, 4783, 2946, 4680, 4725, 4761, 4789,
	4810, 3023, 2011, 2021, 2030, 2038, 2045, 2051, 89, 1660, 3365, 3585, 1726, 3410, 6214, 3630, 3805, 3850, 1792, 3446,
	6250, 3666, 6370, 6698, 3886, 4025, 4070, 4106, 1858, 3474, 6278, 3694, 6398, 6726, 3914, 6482, 6810, 7019, 4134, 4245,
	4290, 4326, 4354, 1924, 3495, 6299, 3715, 6419, 6747, 3935, 6503, 6831, 7040, 4155, 6559, 6887, 7096, 7221, 4375, 4465,
	4510, 4546, 4574, 4595, 1990, 3510, 6314, 3730, 6434, 6762, 3950, 6518, 6846, 7055, 4170, 6574, 6902, 7111, 7236, 4390,
	6609, 6937, 7146, 7271, 1603, 4610, 4685, 4730, 4766, 4794, 4815, 4830, 2056, 2539, 4870, 2660, 4879, 4924, 2770, 4887,
	4932, 4968, 2869, 4894, 4939, 4975, 5003, 2957, 4900, 4945, 4981, 5009, 5030, 3034, 4905, 4950, 4986, 5014, 5035, 5050,
	3100, 2077, 2087, 2096, 2104, 2111, 2117, 2122, 101, 173, 2544, 2665, 185, 2545, 5085, 2666, 2775, 2776, 197, 2546,
	5086, 2667, 5095, 5140, 2777, 2874, 2875, 2876, 209, 2547, 5087, 2668, 5096, 5141, 2778, 5104, 5149, 5185, 2877, 2962,
	2963, 2964, 2965, 221, 2548, 5088, 2669, 5097, 5142, 2779, 5105, 5150, 5186, 2878, 5112, 5157, 5193, 5221, 2966, 3039,
	3040, 3041, 3042, 3043, 233, 2549, 5089, 2670, 5098, 5143, 2780, 5106, 5151, 5187, 2879, 5113, 5158, 5194, 5222, 2967,
	5119, 5164, 5200, 5228, 5249, 3044, 3105, 3106, 3107, 3108, 3109, 3110, 245, 2550, 5090, 2671, 5099, 5144, 2781, 5107,
	5152, 5188, 2880, 5114, 5159, 5195, 5223, 2968, 5120, 5165, 5201, 5229, 5250, 3045, 5125, 5170, 5206, 5234, 5255, 5270,
	3111, 3160, 3161, 3162, 3163, 3164, 3165, 3166, 257, 262, 2137, 263, 2138, 2148, 264, 2139, 2149, 2158, 265, 2140,
	2150, 2159, 2167, 266, 2141, 2151, 2160, 2168, 2175, 267, 2142, 2152, 2161, 2169, 2176, 2182, 268, 2143, 2153, 2162,
	2170, 2177, 2183, 2188, 269, 106, 107, 108, 109, 110, 111, 112, 113, 18, 1616, 2474, 1682, 30, 1626, 3331,
	3551, 1692, 2485, 3771, 2606, 1748, 1758, 42, 1635, 3340, 3560, 1701, 3385, 6189, 3605, 3780, 3825, 1767, 2496, 3991,
	2617, 4000, 4045, 2727, 1814, 1824, 1833, 54, 1643, 3348, 3568, 1709, 3393, 6197, 3613, 3788, 3833, 1775, 3429, 6233,
	3649, 6353, 6681, 3869, 4008, 4053, 4089, 1841, 2507, 4211, 2628, 4220, 4265, 2738, 4228, 4273, 4309, 2837, 1880, 1890,
	1899, 1907, 66, 1650, 3355, 3575, 1716, 3400, 6204, 3620, 3795, 3840, 1782, 3436, 6240, 3656, 6360, 6688, 3876, 4015,
	4060, 4096, 1848, 3464, 6268, 3684, 6388, 6716, 3904, 6472, 6800, 7009, 4124, 4235, 4280, 4316, 4344, 1914, 2518, 4431,
	2639, 4440, 4485, 2749, 4448, 4493, 4529, 2848, 4455, 4500, 4536, 4564, 2936, 1946, 1956, 1965, 1973, 1980, 78, 1656,
	3361, 3581, 1722, 3406, 6210, 3626, 3801, 3846, 1788, 3442, 6246, 3662, 6366, 6694, 3882, 4021, 4066, 4102, 1854, 3470,
	6274, 3690, 6394, 6722, 3910, 6478, 6806, 7015, 4130, 4241, 4286, 4322, 4350, 1920, 3491, 6295, 3711, 6415, 6743, 3931,
	6499, 6827, 7036, 4151, 6555, 6883, 7092, 7217, 4371, 4461, 4506, 4542, 4570, 4591, 1986, 2529, 4651, 2650, 4660, 4705,
	2760, 4668, 4713, 4749, 2859, 4675, 4720, 4756, 4784, 2947, 4681, 4726, 4762, 4790, 4811, 3024, 2012, 2022, 2031, 2039,
	2046, 2052, 90, 1661, 3366, 3586, 1727, 3411, 6215, 3631, 3806, 3851, 1793, 3447, 6251, 3667, 6371, 6699, 3887, 4026,
	4071, 4107, 1859, 3475, 6279, 3695, 6399, 6727, 3915, 6483, 6811, 7020, 4135, 4246, 4291, 4327, 4355, 1925, 3496, 6300,
	3716, 6420, 6748, 3936, 6504, 6832, 7041, 4156, 6560, 6888, 7097, 7222, 4376, 4466, 4511, 4547, 4575, 4596, 1991, 3511,
	6315, 3731, 6435, 6763, 3951, 6519, 6847, 7056, 4171, 6575, 6903, 7112, 7237, 4391, 6610, 6938, 7147, 7272, 7341, 4611,
	4686, 4731, 4767, 4795, 4816, 4831, 2057, 2540, 4871, 2661, 4880, 4925, 2771, 4888, 4933, 4969, 2870, 4895, 4940, 4976,
	5004, 2958, 4901, 4946, 4982, 5010, 5031, 3035, 4906, 4951, 4987, 5015, 5036, 5051, 3101, 2078, 2088, 2097, 2105, 2112,
	2118, 2123, 102, 1665, 3370, 3590, 1731, 3415, 6219, 3635, 3810, 3855, 1797, 3451, 6255, 3671, 6375, 6703, 3891, 4030,
	4075, 4111, 1863, 3479, 6283, 3699, 6403, 6731, 3919, 6487, 6815, 7024, 4139, 4250, 4295, 4331, 4359, 1929, 3500, 6304,
	3720, 6424, 6752, 3940, 6508, 6836, 7045, 4160, 6564, 6892, 7101, 7226, 4380, 4470, 4515, 4551, 4579, 4600, 1995, 3515,
	6319, 3735, 6439, 6767, 3955, 6523, 6851, 7060, 4175, 6579, 6907, 7116, 7241, 4395, 6614, 6942, 7151, 7276, 7345, 4615,
	4690, 4735, 4771, 4799, 4820, 4835, 2061, 3525, 6329, 3745, 6449, 6777, 3965, 6533, 6861, 7070, 4185, 6589, 6917, 7126,
	7251, 4405, 6624, 6952, 7161, 7286, 7355, 4625, 6644, 6972, 7181, 7306, 7375, 1604, 4845, 4910, 4955, 4991, 5019, 5040,
	5055, 5065, 2127, 2551, 5091, 2672, 5100, 5145, 2782, 5108, 5153, 5189, 2881, 5115, 5160, 5196, 5224, 2969, 5121, 5166,
	5202, 5230, 5251, 3046, 5126, 5171, 5207, 5235, 5256, 5271, 3112, 5130, 5175, 5211, 5239, 5260, 5275, 5285, 3167, 2144,
	2154, 2163, 2171, 2178, 2184, 2189, 2193, 114, 174, 2555, 2676, 186, 2556, 5305, 2677, 2786, 2787, 198, 2557, 5306,
	2678, 5315, 5360, 2788, 2885, 2886, 2887, 210, 2558, 5307, 2679, 5316, 5361, 2789, 5324, 5369, 5405, 2888, 2973, 2974,
	2975, 2976, 222, 2559, 5308, 2680, 5317, 5362, 2790, 5325, 5370, 5406, 2889, 5332, 5377, 5413, 5441, 2977, 3050, 3051,
	3052, 3053, 3054, 234, 2560, 5309, 2681, 5318, 5363, 2791, 5326, 5371, 5407, 2890, 5333, 5378, 5414, 5442, 2978, 5339,
	5384, 5420, 5448, 5469, 3055, 3116, 3117, 3118, 3119, 3120, 3121, 246, 2561, 5310, 2682, 5319, 5364, 2792, 5327, 5372,
	5408, 2891, 5334, 5379, 5415, 5443, 2979, 5340, 5385, 5421, 5449, 5470, 3056, 5345, 5390, 5426, 5454, 5475, 5490, 3122,
	3171, 3172, 3173, 3174, 3175, 3176, 3177, 258, 2562, 5311, 2683, 5320, 5365, 2793, 5328, 5373, 5409, 2892, 5335, 5380,
	5416, 5444, 2980, 5341, 5386, 5422, 5450, 5471, 3057, 5346, 5391, 5427, 5455, 5476, 5491, 3123, 5350, 5395, 5431, 5459,
	5480, 5495, 5505, 3178, 3215, 3216, 3217, 3218, 3219, 3220, 3221, 3222, 270, 274, 2203, 275, 2204, 2214, 276, 2205,
	2215, 2224, 277, 2206, 2216, 2225, 2233, 278, 2207, 2217, 2226, 2234, 2241, 279, 2208, 2218, 2227, 2235, 2242, 2248,
	280, 2209, 2219, 2228, 2236, 2243, 2249, 2254, 281, 2210, 2220, 2229, 2237, 2244, 2250, 2255, 2259, 282, 118, 119,
	120, 121, 122, 123, 124, 125, 126, 19, 1617, 2475, 1683, 31, 1627, 3332, 3552, 1693, 2486, 3772, 2607, 1749,
	1759, 43, 1636, 3341, 3561, 1702, 3386, 6190, 3606, 3781, 3826, 1768, 2497, 3992, 2618, 4001, 4046, 2728, 1815, 1825,
	1834, 55, 1644, 3349, 3569, 1710, 3394, 6198, 3614, 3789, 3834, 1776, 3430, 6234, 3650, 6354, 6682, 3870, 4009, 4054,
	4090, 1842, 2508, 4212, 2629, 4221, 4266, 2739, 4229, 4274, 4310, 2838, 1881, 1891, 1900, 1908, 67, 1651, 3356, 3576,
	1717, 3401, 6205, 3621, 3796, 3841, 1783, 3437, 6241, 3657, 6361, 6689, 3877, 4016, 4061, 4097, 1849, 3465, 6269, 3685,
	6389, 6717, 3905, 6473, 6801, 7010, 4125, 4236, 4281, 4317, 4345, 1915, 2519, 4432, 2640, 4441, 4486, 2750, 4449, 4494,
	4530, 2849, 4456, 4501, 4537, 4565, 2937, 1947, 1957, 1966, 1974, 1981, 79, 1657, 3362, 3582, 1723, 3407, 6211, 3627,
	3802, 3847, 1789, 3443, 6247, 3663, 6367, 6695, 3883, 4022, 4067, 4103, 1855, 3471, 6275, 3691, 6395, 6723, 3911, 6479,
	6807, 7016, 4131, 4242, 4287, 4323, 4351, 1921, 3492, 6296, 3712, 6416, 6744, 3932, 6500, 6828, 7037, 4152, 6556, 6884,
	7093, 7218, 4372, 4462, 4507, 4543, 4571, 4592, 1987, 2530, 4652, 2651, 4661, 4706, 2761, 4669, 4714, 4750, 2860, 4676,
	4721, 4757, 4785, 2948, 4682, 4727, 4763, 4791, 4812, 3025, 2013, 2023, 2032, 2040, 2047, 2053, 91, 1662, 3367, 3587,
	1728, 3412, 6216, 3632, 3807, 3852, 1794, 3448, 6252, 3668, 6372, 6700, 3888, 4027, 4072, 4108, 1860, 3476, 6280, 3696,
	6400, 6728, 3916, 6484, 6812, 7021, 4136, 4247, 4292, 4328, 4356, 1926, 3497, 6301, 3717, 6421, 6749, 3937, 6505, 6833,
	7042, 4157, 6561, 6889, 7098, 7223, 4377, 4467, 4512, 4548, 4576, 4597, 1992, 3512, 6316, 3732, 6436, 6764, 3952, 6520,
	6848, 7057, 4172, 6576, 6904, 7113, 7238, 4392, 6611, 6939, 7148, 7273, 7342, 4612, 4687, 4732, 4768, 4796, 4817, 4832,
	2058, 2541, 4872, 2662, 4881, 4926, 2772, 4889, 4934, 4970, 2871, 4896, 4941, 4977, 5005, 2959, 4902, 4947, 4983, 5011,
	5032, 3036, 4907, 4952, 4988, 5016, 5037, 5052, 3102, 2079, 2089, 2098, 2106, 2113, 2119, 2124, 103, 1666, 3371, 3591,
	1732, 3416, 6220, 3636, 3811, 3856, 1798, 3452, 6256, 3672, 6376, 6704, 3892, 4031, 4076, 4112, 1864, 3480, 6284, 3700,
	6404, 6732, 3920, 6488, 6816, 7025, 4140, 4251, 4296, 4332, 4360, 1930, 3501, 6305, 3721, 6425, 6753, 3941, 6509, 6837,
	7046, 4161, 6565, 6893, 7102, 7227, 4381, 4471, 4516, 4552, 4580, 4601, 1996, 3516, 6320, 3736, 6440, 6768, 3956, 6524,
	6852, 7061, 4176, 6580, 6908, 7117, 7242, 4396, 6615, 6943, 7152, 7277, 7346, 4616, 4691, 4736, 4772, 4800, 4821, 4836,
	2062, 3526, 6330, 3746, 6450, 6778, 3966, 6534, 6862, 7071, 4186, 6590, 6918, 7127, 7252, 4406, 6625, 6953, 7162, 7287,
	7356, 4626, 6645, 6973, 7182, 7307, 7376, 7410, 4846, 4911, 4956, 4992, 5020, 5041, 5056, 5066, 2128, 2552, 5092, 2673,
	5101, 5146, 2783, 5109, 5154, 5190, 2882, 5116, 5161, 5197, 5225, 2970, 5122, 5167, 5203, 5231, 5252, 3047, 5127, 5172,
	5208, 5236, 5257, 5272, 3113, 5131, 5176, 5212, 5240, 5261, 5276, 5286, 3168, 2145, 2155, 2164, 2172, 2179, 2185, 2190,
	2194, 115, 1608, 1608, 1608, 1735, 1608, 1608, 3639, 1608, 3859, 1801, 1608, 1608, 3675, 1608, 6707, 3895, 1608, 4079,
	4115, 1867, 1608, 1608, 3703, 1608, 6735, 3923, 1608, 6819, 7028, 4143, 1608, 4299, 4335, 4363, 1933, 1608, 1608, 3724,
	1608, 6756, 3944, 1608, 6840, 7049, 4164, 1608, 6896, 7105, 7230, 4384, 1608, 4519, 4555, 4583, 4604, 1999, 1608, 1608,
	3739, 1608, 6771, 3959, 1608, 6855, 7064, 4179, 1608, 6911, 7120, 7245, 4399, 1608, 6946, 7155, 7280, 7349, 4619, 1608,
	4739, 4775, 4803, 4824, 4839, 2065, 1608, 1608, 3749, 1608, 6781, 3969, 1608, 6865, 7074, 4189, 1608, 6921, 7130, 7255,
	4409, 1608, 6956, 7165, 7290, 7359, 4629, 1608, 6976, 7185, 7310, 7379, 7413, 4849, 1608, 4959, 4995, 5023, 5044, 5059,
	5069, 2131, 1607, 1607, 1607, 1607, 1607, 1607, 1607, 1607, 1607, 1607, 1607, 1607, 1607, 1607, 1607, 1607, 1607, 1607,
	1607, 1607, 1607, 1607, 1607, 1607, 1607, 1607, 1607, 1607, 1606, 1606, 1606, 1606, 1606, 1606, 1605, 1606, 1607, 1607,
	1607, 1607, 1607, 1607, 1607, 1606, 1607, 1608, 1608, 2684, 1608, 5366, 2794, 1608, 5374, 5410, 2893, 1608, 5381, 5417,
	5445, 2981, 1608, 5387, 5423, 5451, 5472, 3058, 1608, 5392, 5428, 5456, 5477, 5492, 3124, 1608, 5396, 5432, 5460, 5481,
	5496, 5506, 3179, 1607, 1607, 1607, 1607, 1607, 1607, 1607, 1606, 1607, 1608, 2221, 2230, 2238, 2245, 2251, 2256, 2260,
	1607, 127, 175, 2566, 2687, 187, 2567, 5525, 2688, 2797, 2798, 199, 2568, 5526, 2689, 5535, 5580, 2799, 2896, 2897,
	2898, 211, 2569, 5527, 2690, 5536, 5581, 2800, 5544, 5589, 5625, 2899, 2984, 2985, 2986, 2987, 223, 2570, 5528, 2691,
	5537, 5582, 2801, 5545, 5590, 5626, 2900, 5552, 5597, 5633, 5661, 2988, 3061, 3062, 3063, 3064, 3065, 235, 2571, 5529,
	2692, 5538, 5583, 2802, 5546, 5591, 5627, 2901, 5553, 5598, 5634, 5662, 2989, 5559, 5604, 5640, 5668, 5689, 3066, 3127,
	3128, 3129, 3130, 3131, 3132, 247, 2572, 5530, 2693, 5539, 5584, 2803, 5547, 5592, 5628, 2902, 5554, 5599, 5635, 5663,
	2990, 5560, 5605, 5641, 5669, 5690, 3067, 5565, 5610, 5646, 5674, 5695, 5710, 3133, 3182, 3183, 3184, 3185, 3186, 3187,
	3188, 259, 2573, 5531, 2694, 5540, 5585, 2804, 5548, 5593, 5629, 2903, 5555, 5600, 5636, 5664, 2991, 5561, 5606, 5642,
	5670, 5691, 3068, 5566, 5611, 5647, 5675, 5696, 5711, 3134, 5570, 5615, 5651, 5679, 5700, 5715, 5725, 3189, 3226, 3227,
	3228, 3229, 3230, 3231, 3232, 3233, 271, 1608, 1608, 2695, 1608, 5586, 2805, 1608, 5594, 5630, 2904, 1608, 5601, 5637,
	5665, 2992, 1608, 5607, 5643, 5671, 5692, 3069, 1608, 5612, 5648, 5676, 5697, 5712, 3135, 1608, 5616, 5652, 5680, 5701,
	5716, 5726, 3190, 1607, 1607, 1607, 1607, 1607, 1607, 1607, 1606, 1607, 1608, 3260, 3261, 3262, 3263, 3264, 3265, 3266,
	1607, 283, 286, 2269, 287, 2270, 2280, 288, 2271, 2281, 2290, 289, 2272, 2282, 2291, 2299, 290, 2273, 2283, 2292,
	2300, 2307, 291, 2274, 2284, 2293, 2301, 2308, 2314, 292, 2275, 2285, 2294, 2302, 2309, 2315, 2320, 293, 2276, 2286,
	2295, 2303, 2310, 2316, 2321, 2325, 294, 1608, 2287, 2296, 2304, 2311, 2317, 2322, 2326, 1607, 295, 130, 131, 132,
	133, 134, 135, 136, 137, 138, 139, 20, 176, 2476, 188, 32, 176, 2577, 2698, 188, 2487, 2808, 2608, 200,
	200, 44, 176, 2577, 2698, 188, 2578, 5745, 2699, 2808, 2809, 200, 2498, 2907, 2619, 2907, 2908, 2729, 212, 212,
	212, 56, 176, 2577, 2698, 188, 2578, 5745, 2699, 2808, 2809, 200, 2579, 5746, 2700, 5755, 5800, 2810, 2907, 2908,
	2909, 212, 2509, 2995, 2630, 2995, 2996, 2740, 2995, 2996, 2997, 2839, 224, 224, 224, 224, 68, 176, 2577, 2698,
	188, 2578, 5745, 2699, 2808, 2809, 200, 2579, 5746, 2700, 5755, 5800, 2810, 2907, 2908, 2909, 212, 2580, 5747, 2701,
	5756, 5801, 2811, 5764, 5809, 5845, 2910, 2995, 2996, 2997, 2998, 224, 2520, 3072, 2641, 3072, 3073, 2751, 3072, 3073,
	3074, 2850, 3072, 3073, 3074, 3075, 2938, 236, 236, 236, 236, 236, 80, 176, 2577, 2698, 188, 2578, 5745, 2699,
	2808, 2809, 200, 2579, 5746, 2700, 5755, 5800, 2810, 2907, 2908, 2909, 212, 2580, 5747, 2701, 5756, 5801, 2811, 5764,
	5809, 5845, 2910, 2995, 2996, 2997, 2998, 224, 2581, 5748, 2702, 5757, 5802, 2812, 5765, 5810, 5846, 2911, 5772, 5817,
	5853, 5881, 2999, 3072, 3073, 3074, 3075, 3076, 236, 2531, 3138, 2652, 3138, 3139, 2762, 3138, 3139, 3140, 2861, 3138,
	3139, 3140, 3141, 2949, 3138, 3139, 3140, 3141, 3142, 3026, 248, 248, 248, 248, 248, 248, 92, 176, 2577, 2698,
	188, 2578, 5745, 2699, 2808, 2809, 200, 2579, 5746, 2700, 5755, 5800, 2810, 2907, 2908, 2909, 212, 2580, 5747, 2701,
	5756, 5801, 2811, 5764, 5809, 5845, 2910, 2995, 2996, 2997, 2998, 224, 2581, 5748, 2702, 5757, 5802, 2812, 5765, 5810,
	5846, 2911, 5772, 5817, 5853, 5881, 2999, 3072, 3073, 3074, 3075, 3076, 236, 2582, 5749, 2703, 5758, 5803, 2813, 5766,
	5811, 5847, 2912, 5773, 5818, 5854, 5882, 3000, 5779, 5824, 5860, 5888, 5909, 3077, 3138, 3139, 3140, 3141, 3142, 3143,
	248, 2542, 3193, 2663, 3193, 3194, 2773, 3193, 3194, 3195, 2872, 3193, 3194, 3195, 3196, 2960, 3193, 3194, 3195, 3196,
	3197, 3037, 3193, 3194, 3195, 3196, 3197, 3198, 3103, 260, 260, 260, 260, 260, 260, 260, 104, 176, 2577, 2698,
	188, 2578, 5745, 2699, 2808, 2809, 200, 2579, 5746, 2700, 5755, 5800, 2810, 2907, 2908, 2909, 212, 2580, 5747, 2701,
	5756, 5801, 2811, 5764, 5809, 5845, 2910, 2995, 2996, 2997, 2998, 224, 2581, 5748, 2702, 5757, 5802, 2812, 5765, 5810,
	5846, 2911, 5772, 5817, 5853, 5881, 2999, 3072, 3073, 3074, 3075, 3076, 236, 2582, 5749, 2703, 5758, 5803, 2813, 5766,
	5811, 5847, 2912, 5773, 5818, 5854, 5882, 3000, 5779, 5824, 5860, 5888, 5909, 3077, 3138, 3139, 3140, 3141, 3142, 3143,
	248, 2583, 5750, 2704, 5759, 5804, 2814, 5767, 5812, 5848, 2913, 5774, 5819, 5855, 5883, 3001, 5780, 5825, 5861, 5889,
	5910, 3078, 5785, 5830, 5866, 5894, 5915, 5930, 3144, 3193, 3194, 3195, 3196, 3197, 3198, 3199, 260, 2553, 3237, 2674,
	3237, 3238, 2784, 3237, 3238, 3239, 2883, 3237, 3238, 3239, 3240, 2971, 3237, 3238, 3239, 3240, 3241, 3048, 3237, 3238,
	3239, 3240, 3241, 3242, 3114, 3237, 3238, 3239, 3240, 3241, 3242, 3243, 3169, 272, 272, 272, 272, 272, 272, 272,
	272, 116, 176, 2577, 2698, 188, 2578, 5745, 2699, 2808, 2809, 200, 2579, 5746, 2700, 5755, 5800, 2810, 2907, 2908,
	2909, 212, 2580, 5747, 2701, 5756, 5801, 2811, 5764, 5809, 5845, 2910, 2995, 2996, 2997, 2998, 224, 2581, 5748, 2702,
	5757, 5802, 2812, 5765, 5810, 5846, 2911, 5772, 5817, 5853, 5881, 2999, 3072, 3073, 3074, 3075, 3076, 236, 2582, 5749,
	2703, 5758, 5803, 2813, 5766, 5811, 5847, 2912, 5773, 5818, 5854, 5882, 3000, 5779, 5824, 5860, 5888, 5909, 3077, 3138,
	3139, 3140, 3141, 3142, 3143, 248, 2583, 5750, 2704, 5759, 5804, 2814, 5767, 5812, 5848, 2913, 5774, 5819, 5855, 5883,
	3001, 5780, 5825, 5861, 5889, 5910, 3078, 5785, 5830, 5866, 5894, 5915, 5930, 3144, 3193, 3194, 3195, 3196, 3197, 3198,
	3199, 260, 2584, 5751, 2705, 5760, 5805, 2815, 5768, 5813, 5849, 2914, 5775, 5820, 5856, 5884, 3002, 5781, 5826, 5862,
	5890, 5911, 3079, 5786, 5831, 5867, 5895, 5916, 5931, 3145, 5790, 5835, 5871, 5899, 5920, 5935, 5945, 3200, 3237, 3238,
	3239, 3240, 3241, 3242, 3243, 3244, 272, 2564, 3270, 2685, 3270, 3271, 2795, 3270, 3271, 3272, 2894, 3270, 3271, 3272,
	3273, 2982, 3270, 3271, 3272, 3273, 3274, 3059, 3270, 3271, 3272, 3273, 3274, 3275, 3125, 3270, 3271, 3272, 3273, 3274,
	3275, 3276, 3180, 3270, 3271, 3272, 3273, 3274, 3275, 3276, 3277, 3224, 284, 284, 284, 284, 284, 284, 284, 284,
	284, 128, 176, 2577, 2698, 188, 2578, 5745, 2699, 2808, 2809, 200, 2579, 5746, 2700, 5755, 5800, 2810, 2907, 2908,
	2909, 212, 2580, 5747, 2701, 5756, 5801, 2811, 5764, 5809, 5845, 2910, 2995, 2996, 2997, 2998, 224, 2581, 5748, 2702,
	5757, 5802, 2812, 5765, 5810, 5846, 2911, 5772, 5817, 5853, 5881, 2999, 3072, 3073, 3074, 3075, 3076, 236, 2582, 5749,
	2703, 5758, 5803, 2813, 5766, 5811, 5847, 2912, 5773, 5818, 5854, 5882, 3000, 5779, 5824, 5860, 5888, 5909, 3077, 3138,
	3139, 3140, 3141, 3142, 3143, 248, 2583, 5750, 2704, 5759, 5804, 2814, 5767, 5812, 5848, 2913, 5774, 5819, 5855, 5883,
	3001, 5780, 5825, 5861, 5889, 5910, 3078, 5785, 5830, 5866, 5894, 5915, 5930, 3144, 3193, 3194, 3195, 3196, 3197, 3198,
	3199, 260, 2584, 5751, 2705, 5760, 5805, 2815, 5768, 5813, 5849, 2914, 5775, 5820, 5856, 5884, 3002, 5781, 5826, 5862,
	5890, 5911, 3079, 5786, 5831, 5867, 5895, 5916, 5931, 3145, 5790, 5835, 5871, 5899, 5920, 5935, 5945, 3200, 3237, 3238,
	3239, 3240, 3241, 3242, 3243, 3244, 272, 1608, 1608, 2706, 1608, 5806, 2816, 1608, 5814, 5850, 2915, 1608, 5821, 5857,
	5885, 3003, 1608, 5827, 5863, 5891, 5912, 3080, 1608, 5832, 5868, 5896, 5917, 5932, 3146, 1608, 5836, 5872, 5900, 5921,
	5936, 5946, 3201, 1607, 1607, 1607, 1607, 1607, 1607, 1607, 1606, 1607, 1608, 3271, 3272, 3273, 3274, 3275, 3276, 3277,
	1607, 284, 2575, 3292, 2696, 3292, 3293, 2806, 3292, 3293, 3294, 2905, 3292, 3293, 3294, 3295, 2993, 3292, 3293, 3294,
	3295, 3296, 3070, 3292, 3293, 3294, 3295, 3296, 3297, 3136, 3292, 3293, 3294, 3295, 3296, 3297, 3298, 3191, 3292, 3293,
	3294, 3295, 3296, 3297, 3298, 3299, 3235, 1608, 3293, 3294, 3295, 3296, 3297, 3298, 3299, 1607, 3268, 296, 296, 296,
	296, 296, 296, 296, 296, 296, 296, 140, 176, 298, 299, 188, 298, 2335, 299, 300, 300, 200, 298, 2335,
	299, 2336, 2346, 300, 301, 301, 301, 212, 298, 2335, 299, 2336, 2346, 300, 2337, 2347, 2356, 301, 302, 302,
	302, 302, 224, 298, 2335, 299, 2336, 2346, 300, 2337, 2347, 2356, 301, 2338, 2348, 2357, 2365, 302, 303, 303,
	303, 303, 303, 236, 298, 2335, 299, 2336, 2346, 300, 2337, 2347, 2356, 301, 2338, 2348, 2357, 2365, 302, 2339,
	2349, 2358, 2366, 2373, 303, 304, 304, 304, 304, 304, 304, 248, 298, 2335, 299, 2336, 2346, 300, 2337, 2347,
	2356, 301, 2338, 2348, 2357, 2365, 302, 2339, 2349, 2358, 2366, 2373, 303, 2340, 2350, 2359, 2367, 2374, 2380, 304,
	305, 305, 305, 305, 305, 305, 305, 260, 298, 2335, 299, 2336, 2346, 300, 2337, 2347, 2356, 301, 2338, 2348,
	2357, 2365, 302, 2339, 2349, 2358, 2366, 2373, 303, 2340, 2350, 2359, 2367, 2374, 2380, 304, 2341, 2351, 2360, 2368,
	2375, 2381, 2386, 305, 306, 306, 306, 306, 306, 306, 306, 306, 272, 298, 2335, 299, 2336, 2346, 300, 2337,
	2347, 2356, 301, 2338, 2348, 2357, 2365, 302, 2339, 2349, 2358, 2366, 2373, 303, 2340, 2350, 2359, 2367, 2374, 2380,
	304, 2341, 2351, 2360, 2368, 2375, 2381, 2386, 305, 2342, 2352, 2361, 2369, 2376, 2382, 2387, 2391, 306, 307, 307,
	307, 307, 307, 307, 307, 307, 307, 284, 298, 2335, 299, 2336, 2346, 300, 2337, 2347, 2356, 301, 2338, 2348,
	2357, 2365, 302, 2339, 2349, 2358, 2366, 2373, 303, 2340, 2350, 2359, 2367, 2374, 2380, 304, 2341, 2351, 2360, 2368,
	2375, 2381, 2386, 305, 2342, 2352, 2361, 2369, 2376, 2382, 2387, 2391, 306, 1608, 2353, 2362, 2370, 2377, 2383, 2388,
	2392, 1607, 307, 308, 308, 308, 308, 308, 308, 308, 308, 308, 308, 296, 142, 142, 143, 142, 143, 144,
	142, 143, 144, 145, 142, 143, 144, 145, 146, 142, 143, 144, 145, 146, 147, 142, 143, 144, 145, 146,
	147, 148, 142, 143, 144, 145, 146, 147, 148, 149, 142, 143, 144, 145, 146, 147, 148, 149, 150, 142,
	143, 144, 145, 146, 147, 148, 149, 150, 151, 142, 143, 144, 145, 146, 147, 148, 149, 150, 151, 152,
	10, 166, 178, 22, 11, 177, 2467, 189, 23, 167, 2478, 2599, 179, 190, 201, 191, 34, 35, 12, 177,
	2468, 189, 24, 177, 2588, 2709, 189, 2479, 2819, 2600, 201, 201, 36, 168, 2489, 2610, 180, 2490, 2918, 2611,
	2720, 2721, 192, 202, 213, 203, 213, 213, 204, 46, 47, 48, 13, 177, 2469, 189, 25, 177, 2588, 2709,
	189, 2480, 2819, 2601, 201, 201, 37, 177, 2588, 2709, 189, 2589, 1599, 2710, 2819, 2820, 201, 2491, 2918, 2612,
	2918, 2919, 2722, 213, 213, 213, 49, 169, 2500, 2621, 181, 2501, 3006, 2622, 2731, 2732, 193, 2502, 3006, 2623,
	3006, 3007, 2733, 2830, 2831, 2832, 205, 214, 225, 215, 225, 225, 216, 225, 225, 225, 217, 58, 59, 60,
	61, 14, 177, 2470, 189, 26, 177, 2588, 2709, 189, 2481, 2819, 2602, 201, 201, 38, 177, 2588, 2709, 189,
	2589, 5965, 2710, 2819, 2820, 201, 2492, 2918, 2613, 2918, 2919, 2723, 213, 213, 213, 50, 177, 2588, 2709, 189,
	2589, 5965, 2710, 2819, 2820, 201, 2590, 5966, 2711, 5975, 1600, 2821, 2918, 2919, 2920, 213, 2503, 3006, 2624, 3006,
	3007, 2734, 3006, 3007, 3008, 2833, 225, 225, 225, 225, 62, 170, 2511, 2632, 182, 2512, 3083, 2633, 2742, 2743,
	194, 2513, 3083, 2634, 3083, 3084, 2744, 2841, 2842, 2843, 206, 2514, 3083, 2635, 3083, 3084, 2745, 3083, 3084, 3085,
	2844, 2929, 2930, 2931, 2932, 218, 226, 237, 227, 237, 237, 228, 237, 237, 237, 229, 237, 237, 237, 237,
	230, 70, 71, 72, 73, 74, 15, 177, 2471, 189, 27, 177, 2588, 2709, 189, 2482, 2819, 2603, 201, 201,
	39, 177, 2588, 2709, 189, 2589, 5965, 2710, 2819, 2820, 201, 2493, 2918, 2614, 2918, 2919, 2724, 213, 213, 213,
	51, 177, 2588, 2709, 189, 2589, 5965, 2710, 2819, 2820, 201, 2590, 5966, 2711, 5975, 6020, 2821, 2918, 2919, 2920,
	213, 2504, 3006, 2625, 3006, 3007, 2735, 3006, 3007, 3008, 2834, 225, 225, 225, 225, 63, 177, 2588, 2709, 189,
	2589, 5965, 2710, 2819, 2820, 201, 2590, 5966, 2711, 5975, 6020, 2821, 2918, 2919, 2920, 213, 2591, 5967, 2712, 5976,
	6021, 2822, 5984, 6029, 1601, 2921, 3006, 3007, 3008, 3009, 225, 2515, 3083, 2636, 3083, 3084, 2746, 3083, 3084, 3085,
	2845, 3083, 3084, 3085, 3086, 2933, 237, 237, 237, 237, 237, 75, 171, 2522, 2643, 183, 2523, 3149, 2644, 2753,
	2754, 195, 2524, 3149, 2645, 3149, 3150, 2755, 2852, 2853, 2854, 207, 2525, 3149, 2646, 3149, 3150, 2756, 3149, 3150,
	3151, 2855, 2940, 2941, 2942, 2943, 219, 2526, 3149, 2647, 3149, 3150, 2757, 3149, 3150, 3151, 2856, 3149, 3150, 3151,
	3152, 2944, 3017, 3018, 3019, 3020, 3021, 231, 238, 249, 239, 249, 249, 240, 249, 249, 249, 241, 249, 249,
	249, 249, 242, 249, 249, 249, 249, 249, 243, 82, 83, 84, 85, 86, 87, 16, 177, 2472, 189, 28,
	177, 2588, 2709, 189, 2483, 2819, 2604, 201, 201, 40, 177, 2588, 2709, 189, 2589, 5965, 2710, 2819, 2820, 201,
	2494, 2918, 2615, 2918, 2919, 2725, 213, 213, 213, 52, 177, 2588, 2709, 189, 2589, 5965, 2710, 2819, 2820, 201,
	2590, 5966, 2711, 5975, 6020, 2821, 2918, 2919, 2920, 213, 2505, 3006, 2626, 3006, 3007, 2736, 3006, 3007, 3008, 2835,
	225, 225, 225, 225, 64, 177, 2588, 2709, 189, 2589, 5965, 2710, 2819, 2820, 201, 2590, 5966, 2711, 5975, 6020,
	2821, 2918, 2919, 2920, 213, 2591, 5967, 2712, 5976, 6021, 2822, 5984, 6029, 6065, 2921, 3006, 3007, 3008, 3009, 225,
	2516, 3083, 2637, 3083, 3084, 2747, 3083, 3084, 3085, 2846, 3083, 3084, 3085, 3086, 2934, 237, 237, 237, 237, 237,
	76, 177, 2588, 2709, 189, 2589, 5965, 2710, 2819, 2820, 201, 2590, 5966, 2711, 5975, 6020, 2821, 2918, 2919, 2920,
	213, 2591, 5967, 2712, 5976, 6021, 2822, 5984, 6029, 6065, 2921, 3006, 3007, 3008, 3009, 225, 2592, 5968, 2713, 5977,
	6022, 2823, 5985, 6030, 6066, 2922, 5992, 6037, 6073, 1602, 3010, 3083, 3084, 3085, 3086, 3087, 237, 2527, 3149, 2648,
	3149, 3150, 2758, 3149, 3150, 3151, 2857, 3149, 3150, 3151, 3152, 2945, 3149, 3150, 3151, 3152, 3153, 3022, 249, 249,
	249, 249, 249, 249, 88, 172, 2533, 2654, 184, 2534, 3204, 2655, 2764, 2765, 196, 2535, 3204, 2656, 3204, 3205,
	2766, 2863, 2864, 2865, 208, 2536, 3204, 2657, 3204, 3205, 2767, 3204, 3205, 3206, 2866, 2951, 2952, 2953, 2954, 220,
	2537, 3204, 2658, 3204, 3205, 2768, 3204, 3205, 3206, 2867, 3204, 3205, 3206, 3207, 2955, 3028, 3029, 3030, 3031, 3032,
	232, 2538, 3204, 2659, 3204, 3205, 2769, 3204, 3205, 3206, 2868, 3204, 3205, 3206, 3207, 2956, 3204, 3205, 3206, 3207,
	3208, 3033, 3094, 3095, 3096, 3097, 3098, 3099, 244, 250, 261, 251, 261, 261, 252, 261, 261, 261, 253, 261,
	261, 261, 261, 254, 261, 261, 261, 261, 261, 255, 261, 261, 261, 261, 261, 261, 256, 94, 95, 96,
	97, 98, 99, 100, 17, 177, 2473, 189, 29, 177, 2588, 2709, 189, 2484, 2819, 2605, 201, 201, 41, 177,
	2588, 2709, 189, 2589, 5965, 2710, 2819, 2820, 201, 2495, 2918, 2616, 2918, 2919, 2726, 213, 213, 213, 53, 177,
	2588, 2709, 189, 2589, 5965, 2710, 2819, 2820, 201, 2590, 5966, 2711, 5975, 6020, 2821, 2918, 2919, 2920, 213, 2506,
	3006, 2627, 3006, 3007, 2737, 3006, 3007, 3008, 2836, 225, 225, 225, 225, 65, 177, 2588, 2709, 189, 2589, 5965,
	2710, 2819, 2820, 201, 2590, 5966, 2711, 5975, 6020, 2821, 2918, 2919, 2920, 213, 2591, 5967, 2712, 5976, 6021, 2822,
	5984, 6029, 6065, 2921, 3006, 3007, 3008, 3009, 225, 2517, 3083, 2638, 3083, 3084, 2748, 3083, 3084, 3085, 2847, 3083,
	3084, 3085, 3086, 2935, 237, 237, 237, 237, 237, 77, 177, 2588, 2709, 189, 2589, 5965, 2710, 2819, 2820, 201,
	2590, 5966, 2711, 5975, 6020, 2821, 2918, 2919, 2920, 213, 2591, 5967, 2712, 5976, 6021, 2822, 5984, 6029, 6065, 2921,
	3006, 3007, 3008, 3009, 225, 2592, 5968, 2713, 5977, 6022, 2823, 5985, 6030, 6066, 2922, 5992, 6037, 6073, 6101, 3010,
	3083, 3084, 3085, 3086, 3087, 237, 2528, 3149, 2649, 3149, 3150, 2759, 3149, 3150, 3151, 2858, 3149, 3150, 3151, 3152,
	2946, 3149, 3150, 3151, 3152, 3153, 3023, 249, 249, 249, 249, 249, 249, 89, 177, 2588, 2709, 189, 2589, 5965,
	2710, 2819, 2820, 201, 2590, 5966, 2711, 5975, 6020, 2821, 2918, 2919, 2920, 213, 2591, 5967, 2712, 5976, 6021, 2822,
	5984, 6029, 6065, 2921, 3006, 3007, 3008, 3009, 225, 2592, 5968, 2713, 5977, 6022, 2823, 5985, 6030, 6066, 2922, 5992,
	6037, 6073, 6101, 3010, 3083, 3084, 3085, 3086, 3087, 237, 2593, 5969, 2714, 5978, 6023, 2824, 5986, 6031, 6067, 2923,
	5993, 6038, 6074, 6102, 3011, 5999, 6044, 6080, 6108, 1603, 3088, 3149, 3150, 3151, 3152, 3153, 3154, 249, 2539, 3204,
	2660, 3204, 3205, 2770, 3204, 3205, 3206, 2869, 3204, 3205, 3206, 3207, 2957, 3204, 3205, 3206, 3207, 3208, 3034, 3204,
	3205, 3206, 3207, 3208, 3209, 3100, 261, 261, 261, 261, 261, 261, 261, 101, 173, 2544, 2665, 185, 2545, 3248,
	2666, 2775, 2776, 197, 2546, 3248, 2667, 3248, 3249, 2777, 2874, 2875, 2876, 209, 2547, 3248, 2668, 3248, 3249, 2778,
	3248, 3249, 3250, 2877, 2962, 2963, 2964, 2965, 221, 2548, 3248, 2669, 3248, 3249, 2779, 3248, 3249, 3250, 2878, 3248,
	3249, 3250, 3251, 2966, 3039, 3040, 3041, 3042, 3043, 233, 2549, 3248, 2670, 3248, 3249, 2780, 3248, 3249, 3250, 2879,
	3248, 3249, 3250, 3251, 2967, 3248, 3249, 3250, 3251, 3252, 3044, 3105, 3106, 3107, 3108, 3109, 3110, 245, 2550, 3248,
	2671, 3248, 3249, 2781, 3248, 3249, 3250, 2880, 3248, 3249, 3250, 3251, 2968, 3248, 3249, 3250, 3251, 3252, 3045, 3248,
	3249, 3250, 3251, 3252, 3253, 3111, 3160, 3161, 3162, 3163, 3164, 3165, 3166, 257, 262, 273, 263, 273, 273, 264,
	273, 273, 273, 265, 273, 273, 273, 273, 266, 273, 273, 273, 273, 273, 267, 273, 273, 273, 273, 273,
	273, 268, 273, 273, 273, 273, 273, 273, 273, 269, 106, 107, 108, 109, 110, 111, 112, 113, 18, 177,
	2474, 189, 30, 177, 2588, 2709, 189, 2485, 2819, 2606, 201, 201, 42, 177, 2588, 2709, 189, 2589, 5965, 2710,
	2819, 2820, 201, 2496, 2918, 2617, 2918, 2919, 2727, 213, 213, 213, 54, 177, 2588, 2709, 189, 2589, 5965, 2710,
	2819, 2820, 201, 2590, 5966, 2711, 5975, 6020, 2821, 2918, 2919, 2920, 213, 2507, 3006, 2628, 3006, 3007, 2738, 3006,
	3007, 3008, 2837, 225, 225, 225, 225, 66, 177, 2588, 2709, 189, 2589, 5965, 2710, 2819, 2820, 201, 2590, 5966,
	2711, 5975, 6020, 2821, 2918, 2919, 2920, 213, 2591, 5967, 2712, 5976, 6021, 2822, 5984, 6029, 6065, 2921, 3006, 3007,
	3008, 3009, 225, 2518, 3083, 2639, 3083, 3084, 2749, 3083, 3084, 3085, 2848, 3083, 3084, 3085, 3086, 2936, 237, 237,
	237, 237, 237, 78, 177, 2588, 2709, 189, 2589, 5965, 2710, 2819, 2820, 201, 2590, 5966, 2711, 5975, 6020, 2821,
	2918, 2919, 2920, 213, 2591, 5967, 2712, 5976, 6021, 2822, 5984, 6029, 6065, 2921, 3006, 3007, 3008, 3009, 225, 2592,
	5968, 2713, 5977, 6022, 2823, 5985, 6030, 6066, 2922, 5992, 6037, 6073, 6101, 3010, 3083, 3084, 3085, 3086, 3087, 237,
	2529, 3149, 2650, 3149, 3150, 2760, 3149, 3150, 3151, 2859, 3149, 3150, 3151, 3152, 2947, 3149, 3150, 3151, 3152, 3153,
	3024, 249, 249, 249, 249, 249, 249, 90, 177, 2588, 2709, 189, 2589, 5965, 2710, 2819, 2820, 201, 2590, 5966,
	2711, 5975, 6020, 2821, 2918, 2919, 2920, 213, 2591, 5967, 2712, 5976, 6021, 2822, 5984, 6029, 6065, 2921, 3006, 3007,
	3008, 3009, 225, 2592, 5968, 2713, 5977, 6022, 2823, 5985, 6030, 6066, 2922, 5992, 6037, 6073, 6101, 3010, 3083, 3084,
	3085, 3086, 3087, 237, 2593, 5969, 2714, 5978, 6023, 2824, 5986, 6031, 6067, 2923, 5993, 6038, 6074, 6102, 3011, 5999,
	6044, 6080, 6108, 6129, 3088, 3149, 3150, 3151, 3152, 3153, 3154, 249, 2540, 3204, 2661, 3204, 3205, 2771, 3204, 3205,
	3206, 2870, 3204, 3205, 3206, 3207, 2958, 3204, 3205, 3206, 3207, 3208, 3035, 3204, 3205, 3206, 3207, 3208, 3209, 3101,
	261, 261, 261, 261, 261, 261, 261, 102, 177, 2588, 2709, 189, 2589, 5965, 2710, 2819, 2820, 201, 2590, 5966,
	2711, 5975, 6020, 2821, 2918, 2919, 2920, 213, 2591, 5967, 2712, 5976, 6021, 2822, 5984, 6029, 6065, 2921, 3006, 3007,
	3008, 3009, 225, 2592, 5968, 2713, 5977, 6022, 2823, 5985, 6030, 6066, 2922, 5992, 6037, 6073, 6101, 3010, 3083, 3084,
	3085, 3086, 3087, 237, 2593, 5969, 2714, 5978, 6023, 2824, 5986, 6031, 6067, 2923, 5993, 6038, 6074, 6102, 3011, 5999,
	6044, 6080, 6108, 6129, 3088, 3149, 3150, 3151, 3152, 3153, 3154, 249, 2594, 5970, 2715, 5979, 6024, 2825, 5987, 6032,
	6068, 2924, 5994, 6039, 6075, 6103, 3012, 6000, 6045, 6081, 6109, 6130, 3089, 6005, 6050, 6086, 6114, 6135, 1604, 3155,
	3204, 3205, 3206, 3207, 3208, 3209, 3210, 261, 2551, 3248, 2672, 3248, 3249, 2782, 3248, 3249, 3250, 2881, 3248, 3249,
	3250, 3251, 2969, 3248, 3249, 3250, 3251, 3252, 3046, 3248, 3249, 3250, 3251, 3252, 3253, 3112, 3248, 3249, 3250, 3251,
	3252, 3253, 3254, 3167, 273, 273, 273, 273, 273, 273, 273, 273, 114, 174, 2555, 2676, 186, 2556, 3281, 2677,
	2786, 2787, 198, 2557, 3281, 2678, 3281, 3282, 2788, 2885, 2886, 2887, 210, 2558, 3281, 2679, 3281, 3282, 2789, 3281,
	3282, 3283, 2888, 2973, 2974, 2975, 2976, 222, 2559, 3281, 2680, 3281, 3282, 2790, 3281, 3282, 3283, 2889, 3281, 3282,
	3283, 3284, 2977, 3050, 3051, 3052, 3053, 3054, 234, 2560, 3281, 2681, 3281, 3282, 2791, 3281, 3282, 3283, 2890, 3281,
	3282, 3283, 3284, 2978, 3281, 3282, 3283, 3284, 3285, 3055, 3116, 3117, 3118, 3119, 3120, 3121, 246, 2561, 3281, 2682,
	3281, 3282, 2792, 3281, 3282, 3283, 2891, 3281, 3282, 3283, 3284, 2979, 3281, 3282, 3283, 3284, 3285, 3056, 3281, 3282,
	3283, 3284, 3285, 3286, 3122, 3171, 3172, 3173, 3174, 3175, 3176, 3177, 258, 2562, 3281, 2683, 3281, 3282, 2793, 3281,
	3282, 3283, 2892, 3281, 3282, 3283, 3284, 2980, 3281, 3282, 3283, 3284, 3285, 3057, 3281, 3282, 3283, 3284, 3285, 3286,
	3123, 3281, 3282, 3283, 3284, 3285, 3286, 3287, 3178, 3215, 3216, 3217, 3218, 3219, 3220, 3221, 3222, 270, 274, 285,
	275, 285, 285, 276, 285, 285, 285, 277, 285, 285, 285, 285, 278, 285, 285, 285, 285, 285, 279, 285,
	285, 285, 285, 285, 285, 280, 285, 285, 285, 285, 285, 285, 285, 281, 285, 285, 285, 285, 285, 285,
	285, 285, 282, 118, 119, 120, 121, 122, 123, 124, 125, 126, 19, 177, 2475, 189, 31, 177, 2588, 2709,
	189, 2486, 2819, 2607, 201, 201, 43, 177, 2588, 2709, 189, 2589, 5965, 2710, 2819, 2820, 201, 2497, 2918, 2618,
	2918, 2919, 2728, 213, 213, 213, 55, 177, 2588, 2709, 189, 2589, 5965, 2710, 2819, 2820, 201, 2590, 5966, 2711,
	5975, 6020, 2821, 2918, 2919, 2920, 213, 2508, 3006, 2629, 3006, 3007, 2739, 3006, 3007, 3008, 2838, 225, 225, 225,
	225, 67, 177, 2588, 2709, 189, 2589, 5965, 2710, 2819, 2820, 201, 2590, 5966, 2711, 5975, 6020, 2821, 2918, 2919,
	2920, 213, 2591, 5967, 2712, 5976, 6021, 2822, 5984, 6029, 6065, 2921, 3006, 3007, 3008, 3009, 225, 2519, 3083, 2640,
	3083, 3084, 2750, 3083, 3084, 3085, 2849, 3083, 3084, 3085, 3086, 2937, 237, 237, 237, 237, 237, 79, 177, 2588,
	2709, 189, 2589, 5965, 2710, 2819, 2820, 201, 2590, 5966, 2711, 5975, 6020, 2821, 2918, 2919, 2920, 213, 2591, 5967,
	2712, 5976, 6021, 2822, 5984, 6029, 6065, 2921, 3006, 3007, 3008, 3009, 225, 2592, 5968, 2713, 5977, 6022, 2823, 5985,
	6030, 6066, 2922, 5992, 6037, 6073, 6101, 3010, 3083, 3084, 3085, 3086, 3087, 237, 2530, 3149, 2651, 3149, 3150, 2761,
	3149, 3150, 3151, 2860, 3149, 3150, 3151, 3152, 2948, 3149, 3150, 3151, 3152, 3153, 3025, 249, 249, 249, 249, 249,
	249, 91, 177, 2588, 2709, 189, 2589, 5965, 2710, 2819, 2820, 201, 2590, 5966, 2711, 5975, 6020, 2821, 2918, 2919,
	2920, 213, 2591, 5967, 2712, 5976, 6021, 2822, 5984, 6029, 6065, 2921, 3006, 3007, 3008, 3009, 225, 2592, 5968, 2713,
	5977, 6022, 2823, 5985, 6030, 6066, 2922, 5992, 6037, 6073, 6101, 3010, 3083, 3084, 3085, 3086, 3087, 237, 2593, 5969,
	2714, 5978, 6023, 2824, 5986, 6031, 6067, 2923, 5993, 6038, 6074, 6102, 3011, 5999, 6044, 6080, 6108, 6129, 3088, 3149,
	3150, 3151, 3152, 3153, 3154, 249, 2541, 3204, 2662, 3204, 3205, 2772, 3204, 3205, 3206, 2871, 3204, 3205, 3206, 3207,
	2959, 3204, 3205, 3206, 3207, 3208, 3036, 3204, 3205, 3206, 3207, 3208, 3209, 3102, 261, 261, 261, 261, 261, 261,
	261, 103, 177, 2588, 2709, 189, 2589, 5965, 2710, 2819, 2820, 201, 2590, 5966, 2711, 5975, 6020, 2821, 2918, 2919,
	2920, 213, 2591, 5967, 2712, 5976, 6021, 2822, 5984, 6029, 6065, 2921, 3006, 3007, 3008, 3009, 225, 2592, 5968, 2713,
	5977, 6022, 2823, 5985, 6030, 6066, 2922, 5992, 6037, 6073, 6101, 3010, 3083, 3084, 3085, 3086, 3087, 237, 2593, 5969,
	2714, 5978, 6023, 2824, 5986, 6031, 6067, 2923, 5993, 6038, 6074, 6102, 3011, 5999, 6044, 6080, 6108, 6129, 3088, 3149,
	3150, 3151, 3152, 3153, 3154, 249, 2594, 5970, 2715, 5979, 6024, 2825, 5987, 6032, 6068, 2924, 5994, 6039, 6075, 6103,
	3012, 6000, 6045, 6081, 6109, 6130, 3089, 6005, 6050, 6086, 6114, 6135, 6150, 3155, 3204, 3205, 3206, 3207, 3208, 3209,
	3210, 261, 2552, 3248, 2673, 3248, 3249, 2783, 3248, 3249, 3250, 2882, 3248, 3249, 3250, 3251, 2970, 3248, 3249, 3250,
	3251, 3252, 3047, 3248, 3249, 3250, 3251, 3252, 3253, 3113, 3248, 3249, 3250, 3251, 3252, 3253, 3254, 3168, 273, 273,
	273, 273, 273, 273, 273, 273, 115, 177, 2588, 2709, 189, 2589, 5965, 2710, 2819, 2820, 201, 2590, 5966, 2711,
	5975, 6020, 2821, 2918, 2919, 2920, 213, 2591, 5967, 2712, 5976, 6021, 2822, 5984, 6029, 6065, 2921, 3006, 3007, 3008,
	3009, 225, 2592, 5968, 2713, 5977, 6022, 2823, 5985, 6030, 6066, 2922, 5992, 6037, 6073, 6101, 3010, 3083, 3084, 3085,
	3086, 3087, 237, 2593, 5969, 2714, 5978, 6023, 2824, 5986, 6031, 6067, 2923, 5993, 6038, 6074, 6102, 3011, 5999, 6044,
	6080, 6108, 6129, 3088, 3149, 3150, 3151, 3152, 3153, 3154, 249, 2594, 5970, 2715, 5979, 6024, 2825, 5987, 6032, 6068,
	2924, 5994, 6039, 6075, 6103, 3012, 6000, 6045, 6081, 6109, 6130, 3089, 6005, 6050, 6086, 6114, 6135, 6150, 3155, 3204,
	3205, 3206, 3207, 3208, 3209, 3210, 261, 2595, 5971, 2716, 5980, 6025, 2826, 5988, 6033, 6069, 2925, 5995, 6040, 6076,
	6104, 3013, 6001, 6046, 6082, 6110, 6131, 3090, 6006, 6051, 6087, 6115, 6136, 6151, 3156, 6010, 6055, 6091, 6119, 6140,
	6155, 1605, 3211, 3248, 3249, 3250, 3251, 3252, 3253, 3254, 3255, 273, 2563, 3281, 2684, 3281, 3282, 2794, 3281, 3282,
	3283, 2893, 3281, 3282, 3283, 3284, 2981, 3281, 3282, 3283, 3284, 3285, 3058, 3281, 3282, 3283, 3284, 3285, 3286, 3124,
	3281, 3282, 3283, 3284, 3285, 3286, 3287, 3179, 3281, 3282, 3283, 3284, 3285, 3286, 3287, 3288, 3223, 285, 285, 285,
	285, 285, 285, 285, 285, 285, 127, 175, 2566, 2687, 187, 2567, 3303, 2688, 2797, 2798, 199, 2568, 3303, 2689,
	3303, 3304, 2799, 2896, 2897, 2898, 211, 2569, 3303, 2690, 3303, 3304, 2800, 3303, 3304, 3305, 2899, 2984, 2985, 2986,
	2987, 223, 2570, 3303, 2691, 3303, 3304, 2801, 3303, 3304, 3305, 2900, 3303, 3304, 3305, 3306, 2988, 3061, 3062, 3063,
	3064, 3065, 235, 2571, 3303, 2692, 3303, 3304, 2802, 3303, 3304, 3305, 2901, 3303, 3304, 3305, 3306, 2989, 3303, 3304,
	3305, 3306, 3307, 3066, 3127, 3128, 3129, 3130, 3131, 3132, 247, 2572, 3303, 2693, 3303, 3304, 2803, 3303, 3304, 3305,
	2902, 3303, 3304, 3305, 3306, 2990, 3303, 3304, 3305, 3306, 3307, 3067, 3303, 3304, 3305, 3306, 3307, 3308, 3133, 3182,
	3183, 3184, 3185, 3186, 3187, 3188, 259, 2573, 3303, 2694, 3303, 3304, 2804, 3303, 3304, 3305, 2903, 3303, 3304, 3305,
	3306, 2991, 3303, 3304, 3305, 3306, 3307, 3068, 3303, 3304, 3305, 3306, 3307, 3308, 3134, 3303, 3304, 3305, 3306, 3307,
	3308, 3309, 3189, 3226, 3227, 3228, 3229, 3230, 3231, 3232, 3233, 271, 2574, 3303, 2695, 3303, 3304, 2805, 3303, 3304,
	3305, 2904, 3303, 3304, 3305, 3306, 2992, 3303, 3304, 3305, 3306, 3307, 3069, 3303, 3304, 3305, 3306, 3307, 3308, 3135,
	3303, 3304, 3305, 3306, 3307, 3308, 3309, 3190, 3303, 3304, 3305, 3306, 3307, 3308, 3309, 3310, 3234, 3259, 3260, 3261,
	3262, 3263, 3264, 3265, 3266, 3267, 283, 286, 297, 287, 297, 297, 288, 297, 297, 297, 289, 297, 297, 297,
	297, 290, 297, 297, 297, 297, 297, 291, 297, 297, 297, 297, 297, 297, 292, 297, 297, 297, 297, 297,
	297, 297, 293, 297, 297, 297, 297, 297, 297, 297, 297, 294, 297, 297, 297, 297, 297, 297, 297, 297,
	297, 295, 130, 131, 132, 133, 134, 135, 136, 137, 138, 139, 20, 177, 2476, 189, 32, 177, 2588, 2709,
	189, 2487, 2819, 2608, 201, 201, 44, 177, 2588, 2709, 189, 2589, 5965, 2710, 2819, 2820, 201, 2498, 2918, 2619,
	2918, 2919, 2729, 213, 213, 213, 56, 177, 2588, 2709, 189, 2589, 5965, 2710, 2819, 2820, 201, 2590, 5966, 2711,
	5975, 6020, 2821, 2918, 2919, 2920, 213, 2509, 3006, 2630, 3006, 3007, 2740, 3006, 3007, 3008, 2839, 225, 225, 225,
	225, 68, 177, 2588, 2709, 189, 2589, 5965, 2710, 2819, 2820, 201, 2590, 5966, 2711, 5975, 6020, 2821, 2918, 2919,
	2920, 213, 2591, 5967, 2712, 5976, 6021, 2822, 5984, 6029, 6065, 2921, 3006, 3007, 3008, 3009, 225, 2520, 3083, 2641,
	3083, 3084, 2751, 3083, 3084, 3085, 2850, 3083, 3084, 3085, 3086, 2938, 237, 237, 237, 237, 237, 80, 177, 2588,
	2709, 189, 2589, 5965, 2710, 2819, 2820, 201, 2590, 5966, 2711, 5975, 6020, 2821, 2918, 2919, 2920, 213, 2591, 5967,
	2712, 5976, 6021, 2822, 5984, 6029, 6065, 2921, 3006, 3007, 3008, 3009, 225, 2592, 5968, 2713, 5977, 6022, 2823, 5985,
	6030, 6066, 2922, 5992, 6037, 6073, 6101, 3010, 3083, 3084, 3085, 3086, 3087, 237, 2531, 3149, 2652, 3149, 3150, 2762,
	3149, 3150, 3151, 2861, 3149, 3150, 3151, 3152, 2949, 3149, 3150, 3151, 3152, 3153, 3026, 249, 249, 249, 249, 249,
	249, 92, 177, 2588, 2709, 189, 2589, 5965, 2710, 2819, 2820, 201, 2590, 5966, 2711, 5975, 6020, 2821, 2918, 2919,
	2920, 213, 2591, 5967, 2712, 5976, 6021, 2822, 5984, 6029, 6065, 2921, 3006, 3007, 3008, 3009, 225, 2592, 5968, 2713,
	5977, 6022, 2823, 5985, 6030, 6066, 2922, 5992, 6037, 6073, 6101, 3010, 3083, 3084, 3085, 3086, 3087, 237, 2593, 5969,
	2714, 5978, 6023, 2824, 5986, 6031, 6067, 2923, 5993, 6038, 6074, 6102, 3011, 5999, 6044, 6080, 6108, 6129, 3088, 3149,
	3150, 3151, 3152, 3153, 3154, 249, 2542, 3204, 2663, 3204, 3205, 2773, 3204, 3205, 3206, 2872, 3204, 3205, 3206, 3207,
	2960, 3204, 3205, 3206, 3207, 3208, 3037, 3204, 3205, 3206, 3207, 3208, 3209, 3103, 261, 261, 261, 261, 261, 261,
	261, 104, 177, 2588, 2709, 189, 2589, 5965, 2710, 2819, 2820, 201, 2590, 5966, 2711, 5975, 6020, 2821, 2918, 2919,
	2920, 213, 2591, 5967, 2712, 5976, 6021, 2822, 5984, 6029, 6065, 2921, 3006, 3007, 3008, 3009, 225, 2592, 5968, 2713,
	5977, 6022, 2823, 5985, 6030, 6066, 2922, 5992, 6037, 6073, 6101, 3010, 3083, 3084, 3085, 3086, 3087, 237, 2593, 5969,
	2714, 5978, 6023, 2824, 5986, 6031, 6067, 2923, 5993, 6038, 6074, 6102, 3011, 5999, 6044, 6080, 6108, 6129, 3088, 3149,
	3150, 3151, 3152, 3153, 3154, 249, 2594, 5970, 2715, 5979, 6024, 2825, 5987, 6032, 6068, 2924, 5994, 6039, 6075, 6103,
	3012, 6000, 6045, 6081, 6109, 6130, 3089, 6005, 6050, 6086, 6114, 6135, 6150, 3155, 3204, 3205, 3206, 3207, 3208, 3209,
	3210, 261, 2553, 3248, 2674, 3248, 3249, 2784, 3248, 3249, 3250, 2883, 3248, 3249, 3250, 3251, 2971, 3248, 3249, 3250,
	3251, 3252, 3048, 3248, 3249, 3250, 3251, 3252, 3253, 3114, 3248, 3249, 3250, 3251, 3252, 3253, 3254, 3169, 273, 273,
	273, 273, 273, 273, 273, 273, 116, 177, 2588, 2709, 189, 2589, 5965, 2710, 2819, 2820, 201, 2590, 5966, 2711,
	5975, 6020, 2821, 2918, 2919, 2920, 213, 2591, 5967, 2712, 5976, 6021, 2822, 5984, 6029, 6065, 2921, 3006, 3007, 3008,
	3009, 225, 2592, 5968, 2713, 5977, 6022, 2823, 5985, 6030, 6066, 2922, 5992, 6037, 6073, 6101, 3010, 3083, 3084, 3085,
	3086, 3087, 237, 2593, 5969, 2714, 5978, 6023, 2824, 5986, 6031, 6067, 2923, 5993, 6038, 6074, 6102, 3011, 5999, 6044,
	6080, 6108, 6129, 3088, 3149, 3150, 3151, 3152, 3153, 3154, 249, 2594, 5970, 2715, 5979, 6024, 2825, 5987, 6032, 6068,
	2924, 5994, 6039, 6075, 6103, 3012, 6000, 6045, 6081, 6109, 6130, 3089, 6005, 6050, 6086, 6114, 6135, 6150, 3155, 3204,
	3205, 3206, 3207, 3208, 3209, 3210, 261, 2595, 5971, 2716, 5980, 6025, 2826, 5988, 6033, 6069, 2925, 5995, 6040, 6076,
	6104, 3013, 6001, 6046, 6082, 6110, 6131, 3090, 6006, 6051, 6087, 6115, 6136, 6151, 3156, 6010, 6055, 6091, 6119, 6140,
	6155, 6165, 3211, 3248, 3249, 3250, 3251, 3252, 3253, 3254, 3255, 273, 2564, 3281, 2685, 3281, 3282, 2795, 3281, 3282,
	3283, 2894, 3281, 3282, 3283, 3284, 2982, 3281, 3282, 3283, 3284, 3285, 3059, 3281, 3282, 3283, 3284, 3285, 3286, 3125,
	3281, 3282, 3283, 3284, 3285, 3286, 3287, 3180, 3281, 3282, 3283, 3284, 3285, 3286, 3287, 3288, 3224, 285, 285, 285,
	285, 285, 285, 285, 285, 285, 128, 177, 2588, 2709, 189, 2589, 5965, 2710, 2819, 2820, 201, 2590, 5966, 2711,
	5975, 6020, 2821, 2918, 2919, 2920, 213, 2591, 5967, 2712, 5976, 6021, 2822, 5984, 6029, 6065, 2921, 3006, 3007, 3008,
	3009, 225, 2592, 5968, 2713, 5977, 6022, 2823, 5985, 6030, 6066, 2922, 5992, 6037, 6073, 6101, 3010, 3083, 3084, 3085,
	3086, 3087, 237, 2593, 5969, 2714, 5978, 6023, 2824, 5986, 6031, 6067, 2923, 5993, 6038, 6074, 6102, 3011, 5999, 6044,
	6080, 6108, 6129, 3088, 3149, 3150, 3151, 3152, 3153, 3154, 249, 2594, 5970, 2715, 5979, 6024, 2825, 5987, 6032, 6068,
	2924, 5994, 6039, 6075, 6103, 3012, 6000, 6045, 6081, 6109, 6130, 3089, 6005, 6050, 6086, 6114, 6135, 6150, 3155, 3204,
	3205, 3206, 3207, 3208, 3209, 3210, 261, 2595, 5971, 2716, 5980, 6025, 2826, 5988, 6033, 6069, 2925, 5995, 6040, 6076,
	6104, 3013, 6001, 6046, 6082, 6110, 6131, 3090, 6006, 6051, 6087, 6115, 6136, 6151, 3156, 6010, 6055, 6091, 6119, 6140,
	6155, 6165, 3211, 3248, 3249, 3250, 3251, 3252, 3253, 3254, 3255, 273, 1608, 1608, 2717, 1608, 6026, 2827, 1608, 6034,
	6070, 2926, 1608, 6041, 6077, 6105, 3014, 1608, 6047, 6083, 6111, 6132, 3091, 1608, 6052, 6088, 6116, 6137, 6152, 3157,
	1608, 6056, 6092, 6120, 6141, 6156, 6166, 3212, 1607, 1607, 1607, 1607, 1607, 1607, 1607, 1606, 1607, 1608, 3282, 3283,
	3284, 3285, 3286, 3287, 3288, 1607, 285, 2575, 3303, 2696, 3303, 3304, 2806, 3303, 3304, 3305, 2905, 3303, 3304, 3305,
	3306, 2993, 3303, 3304, 3305, 3306, 3307, 3070, 3303, 3304, 3305, 3306, 3307, 3308, 3136, 3303, 3304, 3305, 3306, 3307,
	3308, 3309, 3191, 3303, 3304, 3305, 3306, 3307, 3308, 3309, 3310, 3235, 1608, 3304, 3305, 3306, 3307, 3308, 3309, 3310,
	1607, 3268, 297, 297, 297, 297, 297, 297, 297, 297, 297, 297, 140, 176, 2577, 2698, 188, 2578, 3314, 2699,
	2808, 2809, 200, 2579, 3314, 2700, 3314, 3315, 2810, 2907, 2908, 2909, 212, 2580, 3314, 2701, 3314, 3315, 2811, 3314,
	3315, 3316, 2910, 2995, 2996, 2997, 2998, 224, 2581, 3314, 2702, 3314, 3315, 2812, 3314, 3315, 3316, 2911, 3314, 3315,
	3316, 3317, 2999, 3072, 3073, 3074, 3075, 3076, 236, 2582, 3314, 2703, 3314, 3315, 2813, 3314, 3315, 3316, 2912, 3314,
	3315, 3316, 3317, 3000, 3314, 3315, 3316, 3317, 3318, 3077, 3138, 3139, 3140, 3141, 3142, 3143, 248, 2583, 3314, 2704,
	3314, 3315, 2814, 3314, 3315, 3316, 2913, 3314, 3315, 3316, 3317, 3001, 3314, 3315, 3316, 3317, 3318, 3078, 3314, 3315,
	3316, 3317, 3318, 3319, 3144, 3193, 3194, 3195, 3196, 3197, 3198, 3199, 260, 2584, 3314, 2705, 3314, 3315, 2815, 3314,
	3315, 3316, 2914, 3314, 3315, 3316, 3317, 3002, 3314, 3315, 3316, 3317, 3318, 3079, 3314, 3315, 3316, 3317, 3318, 3319,
	3145, 3314, 3315, 3316, 3317, 3318, 3319, 3320, 3200, 3237, 3238, 3239, 3240, 3241, 3242, 3243, 3244, 272, 2585, 3314,
	2706, 3314, 3315, 2816, 3314, 3315, 3316, 2915, 3314, 3315, 3316, 3317, 3003, 3314, 3315, 3316, 3317, 3318, 3080, 3314,
	3315, 3316, 3317, 3318, 3319, 3146, 3314, 3315, 3316, 3317, 3318, 3319, 3320, 3201, 3314, 3315, 3316, 3317, 3318, 3319,
	3320, 3321, 3245, 3270, 3271, 3272, 3273, 3274, 3275, 3276, 3277, 3278, 284, 2586, 3314, 2707, 3314, 3315, 2817, 3314,
	3315, 3316, 2916, 3314, 3315, 3316, 3317, 3004, 3314, 3315, 3316, 3317, 3318, 3081, 3314, 3315, 3316, 3317, 3318, 3319,
	3147, 3314, 3315, 3316, 3317, 3318, 3319, 3320, 3202, 3314, 3315, 3316, 3317, 3318, 3319, 3320, 3321, 3246, 1608, 3315,
	3316, 3317, 3318, 3319, 3320, 3321, 1607, 3279, 3292, 3293, 3294, 3295, 3296, 3297, 3298, 3299, 3300, 3301, 296, 298,
	309, 299, 309, 309, 300, 309, 309, 309, 301, 309, 309, 309, 309, 302, 309, 309, 309, 309, 309, 303,
	309, 309, 309, 309, 309, 309, 304, 309, 309, 309, 309, 309, 309, 309, 305, 309, 309, 309, 309, 309,
	309, 309, 309, 306, 309, 309, 309, 309, 309, 309, 309, 309, 309, 307, 309, 309, 309, 309, 309, 309,
	309, 309, 309, 309, 308, 142, 143, 144, 145, 146, 147, 148, 149, 150, 151, 152, 21, 177, 310, 189,
	33, 177, 310, 311, 189, 310, 312, 311, 201, 201, 45, 177, 310, 311, 189, 310, 2401, 311, 312, 312,
	201, 310, 313, 311, 313, 313, 312, 213, 213, 213, 57, 177, 310, 311, 189, 310, 2401, 311, 312, 312,
	201, 310, 2401, 311, 2402, 2412, 312, 313, 313, 313, 213, 310, 314, 311, 314, 314, 312, 314, 314, 314,
	313, 225, 225, 225, 225, 69, 177, 310, 311, 189, 310, 2401, 311, 312, 312, 201, 310, 2401, 311, 2402,
	2412, 312, 313, 313, 313, 213, 310, 2401, 311, 2402, 2412, 312, 2403, 2413, 2422, 313, 314, 314, 314, 314,
	225, 310, 315, 311, 315, 315, 312, 315, 315, 315, 313, 315, 315, 315, 315, 314, 237, 237, 237, 237,
	237, 81, 177, 310, 311, 189, 310, 2401, 311, 312, 312, 201, 310, 2401, 311, 2402, 2412, 312, 313, 313,
	313, 213, 310, 2401, 311, 2402, 2412, 312, 2403, 2413, 2422, 313, 314, 314, 314, 314, 225, 310, 2401, 311,
	2402, 2412, 312, 2403, 2413, 2422, 313, 2404, 2414, 2423, 2431, 314, 315, 315, 315, 315, 315, 237, 310, 316,
	311, 316, 316, 312, 316, 316, 316, 313, 316, 316, 316, 316, 314, 316, 316, 316, 316, 316, 315, 249,
	249, 249, 249, 249, 249, 93, 177, 310, 311, 189, 310, 2401, 311, 312, 312, 201, 310, 2401, 311, 2402,
	2412, 312, 313, 313, 313, 213, 310, 2401, 311, 2402, 2412, 312, 2403, 2413, 2422, 313, 314, 314, 314, 314,
	225, 310, 2401, 311, 2402, 2412, 312, 2403, 2413, 2422, 313, 2404, 2414, 2423, 2431, 314, 315, 315, 315, 315,
	315, 237, 310, 2401, 311, 2402, 2412, 312, 2403, 2413, 2422, 313, 2404, 2414, 2423, 2431, 314, 2405, 2415, 2424,
	2432, 2439, 315, 316, 316, 316, 316, 316, 316, 249, 310, 317, 311, 317, 317, 312, 317, 317, 317, 313,
	317, 317, 317, 317, 314, 317, 317, 317, 317, 317, 315, 317, 317, 317, 317, 317, 317, 316, 261, 261,
	261, 261, 261, 261, 261, 105, 177, 310, 311, 189, 310, 2401, 311, 312, 312, 201, 310, 2401, 311, 2402,
	2412, 312, 313, 313, 313, 213, 310, 2401, 311, 2402, 2412, 312, 2403, 2413, 2422, 313, 314, 314, 314, 314,
	225, 310, 2401, 311, 2402, 2412, 312, 2403, 2413, 2422, 313, 2404, 2414, 2423, 2431, 314, 315, 315, 315, 315,
	315, 237, 310, 2401, 311, 2402, 2412, 312, 2403, 2413, 2422, 313, 2404, 2414, 2423, 2431, 314, 2405, 2415, 2424,
	2432, 2439, 315, 316, 316, 316, 316, 316, 316, 249, 310, 2401, 311, 2402, 2412, 312, 2403, 2413, 2422, 313,
	2404, 2414, 2423, 2431, 314, 2405, 2415, 2424, 2432, 2439, 315, 2406, 2416, 2425, 2433, 2440, 2446, 316, 317, 317,
	317, 317, 317, 317, 317, 261, 310, 318, 311, 318, 318, 312, 318, 318, 318, 313, 318, 318, 318, 318,
	314, 318, 318, 318, 318, 318, 315, 318, 318, 318, 318, 318, 318, 316, 318, 318, 318, 318, 318, 318,
	318, 317, 273, 273, 273, 273, 273, 273, 273, 273, 117, 177, 310, 311, 189, 310, 2401, 311, 312, 312,
	201, 310, 2401, 311, 2402, 2412, 312, 313, 313, 313, 213, 310, 2401, 311, 2402, 2412, 312, 2403, 2413, 2422,
	313, 314, 314, 314, 314, 225, 310, 2401, 311, 2402, 2412, 312, 2403, 2413, 2422, 313, 2404, 2414, 2423, 2431,
	314, 315, 315, 315, 315, 315, 237, 310, 2401, 311, 2402, 2412, 312, 2403, 2413, 2422, 313, 2404, 2414, 2423,
	2431, 314, 2405, 2415, 2424, 2432, 2439, 315, 316, 316, 316, 316, 316, 316, 249, 310, 2401, 311, 2402, 2412,
	312, 2403, 2413, 2422, 313, 2404, 2414, 2423, 2431, 314, 2405, 2415, 2424, 2432, 2439, 315, 2406, 2416, 2425, 2433,
	2440, 2446, 316, 317, 317, 317, 317, 317, 317, 317, 261, 310, 2401, 311, 2402, 2412, 312, 2403, 2413, 2422,
	313, 2404, 2414, 2423, 2431, 314, 2405, 2415, 2424, 2432, 2439, 315, 2406, 2416, 2425, 2433, 2440, 2446, 316, 2407,
	2417, 2426, 2434, 2441, 2447, 2452, 317, 318, 318, 318, 318, 318, 318, 318, 318, 273, 310, 319, 311, 319,
	319, 312, 319, 319, 319, 313, 319, 319, 319, 319, 314, 319, 319, 319, 319, 319, 315, 319, 319, 319,
	319, 319, 319, 316, 319, 319, 319, 319, 319, 319, 319, 317, 319, 319, 319, 319, 319, 319, 319, 319,
	318, 285, 285, 285, 285, 285, 285, 285, 285, 285, 129, 177, 310, 311, 189, 310, 2401, 311, 312, 312,
	201, 310, 2401, 311, 2402, 2412, 312, 313, 313, 313, 213, 310, 2401, 311, 2402, 2412, 312, 2403, 2413, 2422,
	313, 314, 314, 314, 314, 225, 310, 2401, 311, 2402, 2412, 312, 2403, 2413, 2422, 313, 2404, 2414, 2423, 2431,
	314, 315, 315, 315, 315, 315, 237, 310, 2401, 311, 2402, 2412, 312, 2403, 2413, 2422, 313, 2404, 2414, 2423,
	2431, 314, 2405, 2415, 2424, 2432, 2439, 315, 316, 316, 316, 316, 316, 316, 249, 310, 2401, 311, 2402, 2412,
	312, 2403, 2413, 2422, 313, 2404, 2414, 2423, 2431, 314, 2405, 2415, 2424, 2432, 2439, 315, 2406, 2416, 2425, 2433,
	2440, 2446, 316, 317, 317, 317, 317, 317, 317, 317, 261, 310, 2401, 311, 2402, 2412, 312, 2403, 2413, 2422,
	313, 2404, 2414, 2423, 2431, 314, 2405, 2415, 2424, 2432, 2439, 315, 2406, 2416, 2425, 2433, 2440, 2446, 316, 2407,
	2417, 2426, 2434, 2441, 2447, 2452, 317, 318, 318, 318, 318, 318, 318, 318, 318, 273, 310, 2401, 311, 2402,
	2412, 312, 2403, 2413, 2422, 313, 2404, 2414, 2423, 2431, 314, 2405, 2415, 2424, 2432, 2439, 315, 2406, 2416, 2425,
	2433, 2440, 2446, 316, 2407, 2417, 2426, 2434, 2441, 2447, 2452, 317, 2408, 2418, 2427, 2435, 2442, 2448, 2453, 2457,
	318, 319, 319, 319, 319, 319, 319, 319, 319, 319, 285, 310, 320, 311, 320, 320, 312, 320, 320, 320,
	313, 320, 320, 320, 320, 314, 320, 320, 320, 320, 320, 315, 320, 320, 320, 320, 320, 320, 316, 320,
	320, 320, 320, 320, 320, 320, 317, 320, 320, 320, 320, 320, 320, 320, 320, 318, 320, 320, 320, 320,
	320, 320, 320, 320, 320, 319, 297, 297, 297, 297, 297, 297, 297, 297, 297, 297, 141, 177, 310, 311,
	189, 310, 2401, 311, 312, 312, 201, 310, 2401, 311, 2402, 2412, 312, 313, 313, 313, 213, 310, 2401, 311,
	2402, 2412, 312, 2403, 2413, 2422, 313, 314, 314, 314, 314, 225, 310, 2401, 311, 2402, 2412, 312, 2403, 2413,
	2422, 313, 2404, 2414, 2423, 2431, 314, 315, 315, 315, 315, 315, 237, 310, 2401, 311, 2402, 2412, 312, 2403,
	2413, 2422, 313, 2404, 2414, 2423, 2431, 314, 2405, 2415, 2424, 2432, 2439, 315, 316, 316, 316, 316, 316, 316,
	249, 310, 2401, 311, 2402, 2412, 312, 2403, 2413, 2422, 313, 2404, 2414, 2423, 2431, 314, 2405, 2415, 2424, 2432,
	2439, 315, 2406, 2416, 2425, 2433, 2440, 2446, 316, 317, 317, 317, 317, 317, 317, 317, 261, 310, 2401, 311,
	2402, 2412, 312, 2403, 2413, 2422, 313, 2404, 2414, 2423, 2431, 314, 2405, 2415, 2424, 2432, 2439, 315, 2406, 2416,
	2425, 2433, 2440, 2446, 316, 2407, 2417, 2426, 2434, 2441, 2447, 2452, 317, 318, 318, 318, 318, 318, 318, 318,
	318, 273, 310, 2401, 311, 2402, 2412, 312, 2403, 2413, 2422, 313, 2404, 2414, 2423, 2431, 314, 2405, 2415, 2424,
	2432, 2439, 315, 2406, 2416, 2425, 2433, 2440, 2446, 316, 2407, 2417, 2426, 2434, 2441, 2447, 2452, 317, 2408, 2418,
	2427, 2435, 2442, 2448, 2453, 2457, 318, 319, 319, 319, 319, 319, 319, 319, 319, 319, 285, 310, 2401, 311,
	2402, 2412, 312, 2403, 2413, 2422, 313, 2404, 2414, 2423, 2431, 314, 2405, 2415, 2424, 2432, 2439, 315, 2406, 2416,
	2425, 2433, 2440, 2446, 316, 2407, 2417, 2426, 2434, 2441, 2447, 2452, 317, 2408, 2418, 2427, 2435, 2442, 2448, 2453,
	2457, 318, 1608, 2419, 2428, 2436, 2443, 2449, 2454, 2458, 1607, 319, 320, 320, 320, 320, 320, 320, 320, 320,
	320, 320, 297, 310, 321, 311, 321, 321, 312, 321, 321, 321, 313, 321, 321, 321, 321, 314, 321, 321,
	321, 321, 321, 315, 321, 321, 321, 321, 321, 321, 316, 321, 321, 321, 321, 321, 321, 321, 317, 321,
	321, 321, 321, 321, 321, 321, 321, 318, 321, 321, 321, 321, 321, 321, 321, 321, 321, 319, 321, 321,
	321, 321, 321, 321, 321, 321, 321, 321, 320, 309, 309, 309, 309, 309, 309, 309, 309, 309, 309, 309,
	153, 154, 154, 154, 155, 154, 154, 155, 154, 155, 156, 154, 154, 155, 154, 155, 156, 154, 155, 156,
	157, 154, 154, 155, 154, 155, 156, 154, 155, 156, 157, 154, 155, 156, 157, 158, 154, 154, 155, 154,
	155, 156, 154, 155, 156, 157, 154, 155, 156, 157, 158, 154, 155, 156, 157, 158, 159, 154, 154, 155,
	154, 155, 156, 154, 155, 156, 157, 154, 155, 156, 157, 158, 154, 155, 156, 157, 158, 159, 154, 155,
	156, 157, 158, 159, 160, 154, 154, 155, 154, 155, 156, 154, 155, 156, 157, 154, 155, 156, 157, 158,
	154, 155, 156, 157, 158, 159, 154, 155, 156, 157, 158, 159, 160, 154, 155, 156, 157, 158, 159, 160,
	161, 154, 154, 155, 154, 155, 156, 154, 155, 156, 157, 154, 155, 156, 157, 158, 154, 155, 156, 157,
	158, 159, 154, 155, 156, 157, 158, 159, 160, 154, 155, 156, 157, 158, 159, 160, 161, 154, 155, 156,
	157, 158, 159, 160, 161, 162, 154, 154, 155, 154, 155, 156, 154, 155, 156, 157, 154, 155, 156, 157,
	158, 154, 155, 156, 157, 158, 159, 154, 155, 156, 157, 158, 159, 160, 154, 155, 156, 157, 158, 159,
	160, 161, 154, 155, 156, 157, 158, 159, 160, 161, 162, 154, 155, 156, 157, 158, 159, 160, 161, 162,
	163, 154, 154, 155, 154, 155, 156, 154, 155, 156, 157, 154, 155, 156, 157, 158, 154, 155, 156, 157,
	158, 159, 154, 155, 156, 157, 158, 159, 160, 154, 155, 156, 157, 158, 159, 160, 161, 154, 155, 156,
	157, 158, 159, 160, 161, 162, 154, 155, 156, 157, 158, 159, 160, 161, 162, 163, 154, 155, 156, 157,
	158, 159, 160, 161, 162, 163, 164, 154, 154, 155, 154, 155, 156, 154, 155, 156, 157, 154, 155, 156,
	157, 158, 154, 155, 156, 157, 158, 159, 154, 155, 156, 157, 158, 159, 160, 154, 155, 156, 157, 158,
	159, 160, 161, 154, 155, 156, 157, 158, 159, 160, 161, 162, 154, 155, 156, 157, 158, 159, 160, 161,
	162, 163, 154, 155, 156, 157, 158, 159, 160, 161, 162, 163, 164, 154, 155, 156, 157, 158, 159, 160,
	161, 162, 163, 164, 165,
}