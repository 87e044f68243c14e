package radial

// MaxDegree is the highest degree the coefficient tables cover. Requests
// beyond it fail with ErrDegree at construction time.
const MaxDegree = 10

const maxDegree = MaxDegree

// nfPoles holds the quadratic factors (b0, b1, b2) of the reverse Bessel
// polynomial y_l(u), constant term normalized to 1, whose roots are the
// poles of the degree-l near-field radial function in the inverse-frequency
// variable u. For odd l the leading factor is first order (b2 = 0); a
// degree-l entry has ceil(l/2) factors. Within each degree the full
// second-order factors are sorted by ascending b2.
//
// The factorizations were computed once in high-precision arithmetic and
// verified by expanding them back to the exact integer coefficients
// (l+k)!/((l-k)! k! 2^k) of y_l. They are load-bearing constants: the
// encoded pole positions determine filter stability and must not be
// regenerated with lower-precision root finding.
var nfPoles = [maxDegree + 1][][3]float64{
	0: {},
	1: {
		{1, 1, 0},
	},
	2: {
		{1, 3, 3},
	},
	3: {
		{1, 2.3221853546260855929, 0},
		{1, 3.6778146453739144071, 6.4594326934833653473},
	},
	4: {
		{1, 5.7924212056407443368, 9.1401308902779310256},
		{1, 4.2075787943592556632, 11.487800476871199799},
	},
	5: {
		{1, 3.6467385953296432597, 0},
		{1, 6.703912798307066286, 14.272480513279948265},
		{1, 4.6493486063632904542, 18.156315313452237137},
	},
	6: {
		{1, 8.4967187917267278899, 18.801130589570517411},
		{1, 7.4714167126516293359, 20.852823177396347991},
		{1, 5.0318644956216427742, 26.514025344068052456},
	},
	7: {
		{1, 4.9717868585279356779, 0},
		{1, 9.5165810563092578905, 25.666444752769034175},
		{1, 8.1402783272762749434, 28.936546093263966238},
		{1, 5.3713537578865314883, 36.596785156877450848},
	},
	8: {
		{1, 11.175772086526170398, 31.977225258279201354},
		{1, 10.409681581273763837, 33.934740085181713765},
		{1, 8.7365784344048048141, 38.569253275096191935},
		{1, 5.6779678977952609514, 48.43201865263709588},
	},
	9: {
		{1, 6.2970191817149685378, 0},
		{1, 12.258735808548545576, 40.589267909914637799},
		{1, 11.208843639015562832, 43.646645753129244892},
		{1, 9.2768797743607805933, 49.788502657376288447},
		{1, 5.9585215963601424609, 62.041437621985133043},
	},
	10: {
		{1, 13.844089810854492231, 48.667548564148698918},
		{1, 13.230581930953740518, 50.58236156287200675},
		{1, 11.935056657175571681, 54.839156202307484983},
		{1, 9.7724391337179991598, 62.625585912537518586},
		{1, 6.2178324672981964107, 77.442700531277433593},
	},
}

// spherePoles holds the analogous factors of the rigid-sphere radial
// derivative polynomial y_{l-1}(u) + (l+1)*u*y_l(u), whose roots govern the
// pressure on a rigid spherical baffle at degree l. The polynomial has
// degree l+1, so a degree-l entry has floor(l/2)+1 factors and for even l
// the last factor is first order (b2 = 0). EQ pairs these numerator factors
// with nfPoles denominator factors index by index; the trailing first-order
// placement keeps that pairing aligned.
var spherePoles = [maxDegree + 1][][3]float64{
	0: {
		{1, 1, 0},
	},
	1: {
		{1, 2, 2},
	},
	2: {
		{1, 2.2167565719512513007, 5.0469834114840579821},
		{1, 1.7832434280487486993, 0},
	},
	3: {
		{1, 4.5962670804991975374, 6.0745872972923539627},
		{1, 2.4037329195008024626, 9.8772142144938800908},
	},
	4: {
		{1, 5.383286794476797767, 10.411039473268276256},
		{1, 2.565118300611716228, 16.524880562433302232},
		{1, 3.0515949049114860049, 0},
	},
	5: {
		{1, 7.2605848253170709553, 13.947854767445466509},
		{1, 6.0318083252505300024, 16.248405251208010313},
		{1, 2.7076068494323990423, 25.018709245986206833},
	},
	6: {
		{1, 8.2194560046549150894, 19.969775062768702275},
		{1, 6.589155091352155222, 23.645611335708154734},
		{1, 2.8357754344489018092, 35.379320022046638318},
		{1, 4.3556134695440278794, 0},
	},
	7: {
		{1, 9.9189760259295301276, 25.357965430902977764},
		{1, 9.0470749588145724849, 27.419059898834012815},
		{1, 7.0812315823788456368, 32.650032871550795225},
		{1, 2.9527174328770517507, 47.621957636247279126},
	},
	8: {
		{1, 10.965467182398240675, 33.110913204697048332},
		{1, 9.7801983704461354507, 36.339956434280834982},
		{1, 7.5239253863350875613, 43.299413457802825802},
		{1, 3.0605987807882796008, 61.758325613814196887},
		{1, 5.6698102800322567122, 0},
	},
	9: {
		{1, 12.574459736059550223, 40.287505801708017502},
		{1, 11.895357433229311836, 42.258813101069933082},
		{1, 10.441433686530786128, 46.772345771802133873},
		{1, 7.927756397313371357, 55.624283634428476986},
		{1, 3.1609927468669804567, 77.797701785579079508},
	},
	10: {
		{1, 13.674512261047946702, 49.784985788603726121},
		{1, 12.736178366682828964, 52.83481204590401748},
		{1, 11.045815608573777121, 58.750914586690483455},
		{1, 8.3000868182951195276, 69.649789094091945674},
		{1, 3.2550792183729366116, 95.747635361500823968},
		{1, 6.9883277270273910738, 0},
	},
}
