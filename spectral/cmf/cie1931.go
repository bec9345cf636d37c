package cmf

// CIE 1931 2° color-matching functions, 5 nm. Columns: nm, x̄, ȳ, z̄.
var cie1931TwoDegree = [...][4]float64{
	{360, 0.0001299, 0.000003917, 0.0006061},
	{365, 0.0002321, 0.000006965, 0.001086},
	{370, 0.0004149, 0.00001239, 0.001946},
	{375, 0.0007416, 0.00002202, 0.003486},
	{380, 0.001368, 0.000039, 0.00645},
	{385, 0.002236, 0.000064, 0.01055},
	{390, 0.004243, 0.00012, 0.02005},
	{395, 0.00765, 0.000217, 0.03621},
	{400, 0.01431, 0.000396, 0.06785},
	{405, 0.02319, 0.00064, 0.1102},
	{410, 0.04351, 0.00121, 0.2074},
	{415, 0.07763, 0.00218, 0.3713},
	{420, 0.13438, 0.004, 0.6456},
	{425, 0.21477, 0.0073, 1.03905},
	{430, 0.2839, 0.0116, 1.3856},
	{435, 0.3285, 0.01684, 1.62296},
	{440, 0.34828, 0.023, 1.74706},
	{445, 0.34806, 0.0298, 1.7826},
	{450, 0.3362, 0.038, 1.77211},
	{455, 0.3187, 0.048, 1.7441},
	{460, 0.2908, 0.06, 1.6692},
	{465, 0.2511, 0.0739, 1.5281},
	{470, 0.19536, 0.09098, 1.28764},
	{475, 0.1421, 0.1126, 1.0419},
	{480, 0.09564, 0.13902, 0.81295},
	{485, 0.05795, 0.1693, 0.6162},
	{490, 0.03201, 0.20802, 0.46518},
	{495, 0.0147, 0.2586, 0.3533},
	{500, 0.0049, 0.323, 0.272},
	{505, 0.0024, 0.4073, 0.2123},
	{510, 0.0093, 0.503, 0.1582},
	{515, 0.0291, 0.6082, 0.1117},
	{520, 0.06327, 0.71, 0.07825},
	{525, 0.1096, 0.7932, 0.05725},
	{530, 0.1655, 0.862, 0.04216},
	{535, 0.22575, 0.91485, 0.02984},
	{540, 0.2904, 0.954, 0.0203},
	{545, 0.3597, 0.9803, 0.0134},
	{550, 0.43345, 0.99495, 0.00875},
	{555, 0.51205, 1.0, 0.00575},
	{560, 0.5945, 0.995, 0.0039},
	{565, 0.6784, 0.9786, 0.00275},
	{570, 0.7621, 0.952, 0.0021},
	{575, 0.8425, 0.9154, 0.0018},
	{580, 0.9163, 0.87, 0.00165},
	{585, 0.9786, 0.8163, 0.0014},
	{590, 1.0263, 0.757, 0.0011},
	{595, 1.0567, 0.6949, 0.001},
	{600, 1.0622, 0.631, 0.0008},
	{605, 1.0456, 0.5668, 0.0006},
	{610, 1.0026, 0.503, 0.00034},
	{615, 0.9384, 0.4412, 0.00024},
	{620, 0.85445, 0.381, 0.00019},
	{625, 0.7514, 0.321, 0.0001},
	{630, 0.6424, 0.265, 0.00005},
	{635, 0.5419, 0.217, 0.00003},
	{640, 0.4479, 0.175, 0.00002},
	{645, 0.3608, 0.1382, 0.00001},
	{650, 0.2835, 0.107, 0},
	{655, 0.2187, 0.0816, 0},
	{660, 0.1649, 0.061, 0},
	{665, 0.1212, 0.04458, 0},
	{670, 0.0874, 0.032, 0},
	{675, 0.0636, 0.0232, 0},
	{680, 0.04677, 0.017, 0},
	{685, 0.0329, 0.01192, 0},
	{690, 0.0227, 0.00821, 0},
	{695, 0.01584, 0.005723, 0},
	{700, 0.011359, 0.004102, 0},
	{705, 0.008111, 0.002929, 0},
	{710, 0.00579, 0.002091, 0},
	{715, 0.004109, 0.001484, 0},
	{720, 0.002899, 0.001047, 0},
	{725, 0.002049, 0.00074, 0},
	{730, 0.00144, 0.00052, 0},
	{735, 0.001, 0.000361, 0},
	{740, 0.00069, 0.000249, 0},
	{745, 0.000476, 0.000172, 0},
	{750, 0.000332, 0.00012, 0},
	{755, 0.000235, 0.0000848, 0},
	{760, 0.000166, 0.00006, 0},
	{765, 0.000117, 0.0000424, 0},
	{770, 0.000083, 0.00003, 0},
	{775, 0.0000590, 0.0000212, 0},
	{780, 0.0000420, 0.000015, 0},
	{785, 0.00002943, 0.00001062, 0},
	{790, 0.00002081, 0.000007514, 0},
	{795, 0.0000147, 0.000005309, 0},
	{800, 0.00001041, 0.00000376, 0},
	{805, 0.000007353, 0.000002656, 0},
	{810, 0.000005208, 0.000001881, 0},
	{815, 0.000003689, 0.000001332, 0},
	{820, 0.000002615, 0.000000944, 0},
	{825, 0.000001852, 0.000000669, 0},
	{830, 0.000001311, 0.000000474, 0},
}
