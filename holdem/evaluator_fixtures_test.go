package holdem

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// evaluatorFixtures is a golden set of seven-card hands and their expected
// power indices, covering every hand category, both evaluator paths, and the
// wheel/royal edge cases. Any change to the two lookup tables or the rainbow
// hash must keep every one of these bit-exact.
var evaluatorFixtures = []struct {
	cards string
	index uint16
}{
	{"4c8hKhQc4s6hJd", 5580}, {"2d5sJc6s3s3dQh", 5849}, {"7h9c5h5d4d7s4s", 3176},
	{"5h7d7cTd8dAd2c", 4893}, {"5d2h7c3d5h7sKh", 3172}, {"Js8s5s4sAs7dQs", 503},
	{"9hTc3sAd2s6cAh", 3463}, {"6h4sKh7h8d3hAd", 6314}, {"Td9s5cTsJc6dAh", 4224},
	{"6s2d8c6d6h4dTh", 2176}, {"AsJsJh5s9d7d9h", 2841}, {"Jd4d5d5s9d7h4c", 3262},
	{"KcKs2h6hAc9c7d", 3573}, {"2s8c3sKdQs8d7d", 4703}, {"7c9s6c2hAdQd3c", 6419},
	{"8d7s5cAcKs7h9d", 4868}, {"8c8s3s9c8h3c9h", 243}, {"2hThJh8sTs7dJd", 2834},
	{"AsKcAhJsThAc4d", 1610}, {"4sQh3h7s9s7hQd", 2768}, {"4h5d6dAh3d5sTh", 5335},
	{"4dTsQd8c6s3c7s", 7111}, {"4d3s2c7d7s2d2s", 317}, {"8cAsQsKd2s7hTh", 6194},
	{"7s6hKc2hQsTsJc", 6679}, {"Ah7hJs5h4cTs6d", 6482}, {"Kc4h6hQs3h7cTh", 6726},
	{"ThKs9d4s2s8d3s", 6884}, {"Kd3hTh4c5h8h2s", 6911}, {"3s6s8h9cJc2dQs", 7035},
	{"4d2c3cAd3h4s8h", 3292}, {"8d2sTs5c8s9cAc", 4672}, {"9c6d4cKs7c6sQs", 5142},
	{"4c3hKc5cQdQcTd", 3833}, {"3d9h6dTc7s9c5s", 4595}, {"7c4cTcKs3d2s6c", 6918},
	{"6cJhTsQdTc2sJd", 2832}, {"Qd4cKh2h2s3cAh", 5965}, {"6d2dKd3h8sAs9c", 6294},
	{"4s3hQc2c5hKhTs", 6735}, {"4s6hQh4d2s7hQc", 2803}, {"3d6d3h3s4sKh9h", 2349},
	{"KsQdKc4d5d3cTs", 3613}, {"Jh6s5s5d4sQh2h", 5409}, {"Th5d5c9c2sJsQs", 5405},
	{"Th9h6cKs5hKh4s", 3683}, {"7dJs6h5d2s2dTd", 6103}, {"As9d8c6dQd6sJh", 5095},
	{"Jd4d2c6sAd4s5c", 5548}, {"2d7c6sKd6cKsKh", 185}, {"7dKdJc4cTcKsAs", 3555},
	{"Qd2d5cJd7c6cAc", 6370}, {"JhAd3d3cTs4d5h", 5764}, {"8dKd7cKsTc6sQd", 3610},
	{"6h3s7d8h7c9h3d", 3198}, {"Tc2s2c4c8d9h6d", 6129}, {"5hJd4s2h3d7d9h", 7290},
	{"7c5sTsTcQcAcJd", 4215}, {"Jd7dAcQd7c2cJs", 2863}, {"4cKc6h9cAc9sAd", 2511},
	{"KsAdJc7dQs2h7c", 4865}, {"2dJc8h9cJd7c9d", 2845}, {"2hAc8cJdTd5d6h", 6477},
	{"Qh6s5c8d7d5s9c", 1604}, {"8dKdAh2cQd7cQh", 3768}, {"2h3h8dJc7h3dQs", 5847},
	{"9s8cKs5c2d9c3s", 4506}, {"5sTd5c6hQs8d3h", 5414}, {"3h6hTsAdJc3d4d", 5764},
	{"ThAs2dKs3s8hAd", 3345}, {"6h8hTs8c6c4h2s", 3109}, {"3hTsJcQhQd2s9h", 3865},
	{"JcAs6c8c9d5h2s", 6498}, {"AcTsQs9sJs4d3h", 6349}, {"5dKh9sQs2c7hAs", 6202},
	{"Js2cKs5sAhTsQh", 1599}, {"2c4hKs6c8s6s5d", 5171}, {"2d3sThAsJhJd8d", 4005},
	{"TsJs9c8d9h4cJh", 2844}, {"2cAhAd8h6c4s4h", 2571}, {"Qc8d7cQdKh4s3c", 3844},
	{"Jd8sKhTh4hJsQs", 4040}, {"QcTc6hQd6c8s7h", 2778}, {"Qd3dKdJd8h6sJc", 4042},
	{"5cTs4s9s4d7sAc", 5552}, {"Qd5s2s4sAdTh9h", 6388}, {"5c2h9dQc2s3d4h", 6083},
	{"6dKh7hTd3s7d2s", 4939}, {"9h2dKhTd9c5h4h", 4500}, {"5s8d2d7cKh3h5d", 5390},
	{"8hTh9s7cQc4sTd", 4313}, {"JdKdJh8c5h8h3c", 2853}, {"4s3s4c6hAhAdQc", 2567},
	{"Jh7d6cAsAc3dKs", 3338}, {"3sQc8h3hTh9sAc", 5756}, {"7d4h4s7h9s8d6s", 3187},
	{"5s4s7sKc3dQs9c", 6748}, {"4s6c9d8cQcAc4h", 5537}, {"6hJcJd9d3c9h2c", 2847},
	{"6c7dQd2cAsTdJc", 6351}, {"8s6d2c8c7c2sKd", 3150}, {"JdTcTsJh5dAs7c", 2830},
	{"Th4h3c9d9s4dAc", 3061}, {"4hAhTs9h8d9c2c", 4452}, {"3sAc3dQcTdKs4c", 5745},
	{"2c2sQcQd4hAs9s", 2819}, {"9d8d3cAdTdJhAs", 3425}, {"3d4sTc4d2hAh3h", 3292},
	{"Ks9d6hJs4h8sQh", 6685}, {"2cAdKh6d8hAh4s", 3360}, {"JhJd7s8s8c2s4s", 2857},
	{"Js9d5dAh7dQhKc", 6185}, {"QcJh6sQs8hTs4c", 3866}, {"KsAhJdKcKhJc7h", 180},
	{"9d6c2cTdJc5h5d", 5441}, {"4s9c5s6d2dTc8d", 7345}, {"7cKh4sAd6hTs8d", 6272},
	{"TdTsJdTc6hKc4s", 1885}, {"7s4h2d5sKs5h4d", 3260}, {"6s8c3d8dKcQhAh", 4645},
	{"7s9dKhKd6hThQd", 3609}, {"7h2c5h4s3sAd6c", 1606}, {"8c2h3cKc9h7c3h", 5824},
	{"Kh5s6s2h7hTs9c", 6887}, {"Qs9d9hAh4h4c3s", 3061}, {"9c9hJs5s3c6sJd", 2847},
	{"Kc8cJhTd7c9d2c", 1602}, {"9d2d6s9hTs3sTd", 2935}, {"3hTsAh5c8h4d6c", 6579},
	{"4d3sQh2s3c7c9s", 5861}, {"5c4sTd6dTc2sJd", 4359}, {"6d6h8cTs8s5s2h", 3109},
	{"3dTdJsQhJhQs4h", 2722}, {"6dKh5d6cKc2c2s", 2672}, {"9c4s6d6s7h3s8h", 5270},
	{"2dTd5s8dKhAdKd", 414}, {"JsAhJd4c7hTcKc", 3986}, {"8cQh5hJs8sJc2d", 2854},
	{"6dJd7d8s2hTc4d", 7236}, {"Ad6c7sQs4d9d2s", 6419}, {"QsQc3hJd3c9dQh", 200},
	{"Qc9h6d4d3dKc5c", 6752}, {"Td8cJd7c9s9h8s", 1602}, {"9s4cAcThJc7cAd", 3425},
	{"7sAh8sKd3c6s2s", 6314}, {"3dAs3cAh4c9dQh", 2578}, {"5h4h8s2d7cQcAs", 6435},
	{"3h9h5d6d6cQh4h", 5202}, {"3h9h7s9dQc8d2s", 4540}, {"6sThAc5c6dJd4h", 5104},
	{"Jc5d5c7dJs6s3d", 2891}, {"Td4sJsTsAc7d5d", 4226}, {"QdKsQh7h2c6s4h", 3850},
	{"Ah2h9s9dQh2d7c", 3083}, {"7hQc3c9cJc5sAd", 6358}, {"5sTdAh8dQcQs2h", 3785},
	{"Qd8c4s6dQc6s9c", 2779}, {"3c5dQh2c9c8hKd", 6743}, {"4hTsJc7h8c6c5c", 1605},
	{"Ts4c5c7cTcJc6c", 1388}, {"Th6d9s5s7s2sQd", 7096}, {"5c5dAc2c9hAdJd", 2557},
	{"5s5d3sTsKd3h7c", 3271}, {"2c3h5c3s5s6d4c", 1607}, {"AhKc3c8h3s3hJh", 2335},
	{"JhTdJd2sKhTh6d", 2831}, {"QcTd4hJc8s2s4c", 5625}, {"Kc9c2dKs8s7cAd", 3572},
	{"3d5c9c8c2s2h3h", 3319}, {"AdAs5hQd6dAc7h", 1624}, {"4hJd8c7d7c4d8h", 3097},
	{"4dTs4cAsKs8c5s", 5527}, {"Qs4d5h7s2cAc9s", 6420}, {"TdAc6c8hTs3h6h", 2962},
	{"5h8cAcJsAh6s8h", 2524}, {"9s2d3c8h7s5h9h", 4611}, {"Th9d2c8s6c8hTc", 2944},
	{"5cQdJh7h6s2cKd", 6698}, {"9d3c6c7sKcKs5h", 3715}, {"KsJc7sJdKc7hQs", 2611},
	{"Tc8h2sAc5c4s8s", 4675}, {"Ac5h9hQs6s5s9s", 3050}, {"Qs9cQhJh8c6sQc", 1763},
	{"7h5hKs6hTd6s2d", 5159}, {"Th4s4hAd3s9sJs", 5544}, {"TsJhQsKdQh3d2d", 3820},
	{"Qd6h9hJdAsKd6d", 5085}, {"KdQc8c3h7s6c4h", 6762}, {"6sJcTs9s6d8c9d", 3042},
	{"8cQc2h2d3dTcKs", 6021}, {"Qd6c8d5d9d7d5c", 1284}, {"5hQd7d8h9sTs9h", 4533},
	{"QhTh6cQcQd6d4c", 197}, {"6s6c8c2dAsJdKc", 5086}, {"7h4dAd2hQs6d6s", 5099},
	{"KdQhJd4d3hAhQd", 3765}, {"Ts5c8d7sAh9cTd", 4232}, {"4dAcKc3d2d2hQd", 5965},
	{"9h7sJd3c5c7dAc", 4885}, {"8c3s5hJh7s4h3h", 5894}, {"Qh8c3dQc9d5sAc", 3792},
	{"Ah8c9hJh7cQs2s", 6357}, {"7c6dAs3hKdTd4c", 6278}, {"Kd3cTh8cQc4d5s", 6722},
	{"Ts9d5d6sJd2s6h", 5221}, {"As2h6dTdTh9dQc", 4216}, {"7c8c4s4c3sTh2d", 5695},
	{"4dJc7d4s3hTcAc", 5544}, {"9cAd8c7dAc6cQd", 3397}, {"6d9s2hJdTs3cQd", 7008},
	{"2s5c2hKsKh7s4c", 2715}, {"3c9sAs6sAc7d4h", 3495}, {"Qd4h3s9c6dTdJc", 7008},
	{"Ah2d5dQhQc4hAs", 2485}, {"4h3sJc7c6hTh2s", 7252}, {"6h5h9c8h7s2h7d", 1604},
	{"8d4d3sTc8s8c8h", 86}, {"7h8c4dJc4c6c2c", 1457}, {"6dJs4cJh2d3d9s", 4161},
	{"9h7hAd7c4dKd8d", 4868}, {"Jc5h2c2h9sTc8s", 6101}, {"6d5c8h9sQcKd9h", 4482},
	{"6d6hAd9dQs3d2s", 5097}, {"4cQcKc6s9h3dQs", 3839}, {"4cTdTh2c6dAh5d", 4250},
	{"7d2d2h2cTsJdKc", 2413}, {"5h2c5c9dTcJs6c", 5441}, {"5h5c6d2dKh8hJh", 5371},
	{"2d2s9h4dQh6d5s", 6082}, {"4dAd5sTdKdQc2d", 428}, {"8cThAs7s9cTc6c", 1603},
	{"3hAh7c5dTcTs5c", 2973}, {"2h7d3cKc6sAc8d", 6314}, {"2c6sQdTh4hTd7d", 4326},
	{"5d7d6c9s2d4sAs", 6624}, {"JsQh6s5s9c6d2d", 5186}, {"Kc8c2c6sQs4cTh", 6721},
	{"Kd2sTh2dJdTsKc", 2623}, {"Jc4d8dQs2h2c4h", 3305}, {"7d5d9sQd7hTc2d", 4973},
	{"9c3s9sKd6sAs6c", 3039}, {"Qd4c8dKc5dJcQc", 3822}, {"2h2c3c9d8c9cAs", 3083},
	{"AcKh5c9s9h7h7c", 3028}, {"3hJcTdTcAhKd6s", 4206}, {"7c6s9cJcAhQs3h", 6358},
	{"Qd3hJc2s4hJd3d", 2909}, {"QsAs3hJhJc2cTh", 3995}, {"JhKc9h6sTc4c9d", 4489},
	{"6sAh9c9dQh2h6h", 3039}, {"8s8dQd2d8h4sQc", 240}, {"KdTc2h7sTsKs2c", 2626},
	{"KhKsQd9d9s2h8s", 2633}, {"3sTsJh5dQhQd9h", 3865}, {"Jh6d9s2hKs3d2c", 6030},
	{"9sAc3cTd4s9h6s", 4454}, {"Kd5dAd7c7dKcJs", 2654}, {"5c4d3sKdAh9cKc", 3575},
	{"Qc3cKhQhJd9s5d", 3821}, {"8hAsKh7sJh7hTh", 941}, {"5d4dKd2h2dQhTs", 6021},
	{"TcAhQs2hAs4h6c", 3392}, {"9c4s6d3dAhJcJh", 4014}, {"Ks7cTs2sJc9dTd", 4269},
	{"QdKc3h4c5c5h2h", 5366}, {"6d8h2c5d5sKd8s", 3117}, {"5hJh3s2s9sQdQh", 3876},
	{"AsJsQcAd5sKc8h", 3325}, {"6sJd3h3dJsKc9s", 2908}, {"3h3s5s2s7dAs7s", 809},
	{"Qd6h4d6dTh8c9s", 5193}, {"7c9sJc2dQc7h8h", 4966}, {"7dQc5d6hKhTcQs", 3831},
	{"4s5dTsQh2s3hQd", 3923}, {"4dJc3d4h8c2s2d", 3306}, {"4d9sAs6cKdTdQd", 6193},
	{"AsThQdJc6dTd5d", 4215}, {"Td3cJc4s7dKh9h", 6798}, {"5sTsTh3s9hTcQs", 1895},
	{"9d3sAc5c4cKcTh", 6268}, {"Kh7c6c2d5d4d5s", 5395}, {"5dKcJcTcQd7d4c", 6679},
	{"Kc4hJdAcJc3dJh", 1807}, {"9c5c3c2h2sJd5d", 3284}, {"AcQh7h6hKs3s5h", 6214},
	{"KcAd3h2dAsTc4c", 3349}, {"4c5dAc6c8c6sKs", 5089}, {"6d2d4d6s9sQd8d", 1332},
	{"Qh5h4d8h6c3cJd", 7060}, {"AcAs6dAhJd5c5d", 174}, {"Jc8dTh7s9s2d6s", 1602},
	{"8dJs6d5dKh9sAd", 6237}, {"9s9cJh8hQc2dKd", 4480}, {"AdJh6sKc5d6h8s", 5086},
	{"7c4c8hKs2h7s9s", 4944}, {"Jh4s8d3s9h6dAc", 6498}, {"2cQdQc4c7h4s5h", 2803},
	{"6c3h6d8c7h2d2s", 3254}, {"Jc7s6cKhKc2d5s", 3666}, {"Kc7s8d6h8cTcAd", 4647},
	{"2d7h2hQh3dQcKd", 2820}, {"Ah3c8s8hQc4sTc", 4656}, {"8sAd4c9s8h2c6c", 4680},
	{"QsQc6sThAs9s6h", 2775}, {"6c4s9h9dAcQhTs", 4436}, {"3d4hAs2s2h4d4s", 297},
	{"Jd9d4hTc9s8c7c", 1602}, {"Qd2dAs3s4sKd5c", 1608}, {"KsJd6d9c8c7cTd", 1602},
	{"QsTs6d6c8h2c9s", 5193}, {"8hAh8s7s2c2sAc", 2527}, {"6s6hAs8dTcKd2h", 5087},
	{"7c4sAs7h9d9h3s", 3028}, {"Jc3s3h7h7cTs5s", 3196}, {"Kc4c9c7c2dJs4h", 5590},
	{"Kh9d2s8d2h7d2d", 2415}, {"5dJhKc6c8c3h3c", 5811}, {"6sKc6c7s4d5dKd", 2671},
	{"4h2sJsKs3s3cQc", 5800}, {"8c4d2sKdQd3h6d", 6768}, {"7d6sKhTs7c3d9c", 4937},
	{"KdAc7s2s4d5s7h", 4871}, {"QsAc5d7c9s6d8s", 1604}, {"Ts4d2c8s6h3hKs", 6908},
	{"3d2c4cTdTs7d4s", 2990}, {"ThJs3c4s9d2c8c", 7218}, {"9h9s7hKsQsKc5h", 2633},
	{"QdAh3c5s3s8sJs", 5755}, {"As2d4h9cJh6c5h", 6508}, {"5sKcKs7d8d5hJc", 2678},
	{"4s6c7d2sQc6h9h", 5201}, {"Ks8h6h2d5dAd5h", 5309}, {"5d6s7s5h8hQhJc", 5407},
	{"3hQdJd9h6h5c6d", 5186}, {"9dAs4d4s5hTc9s", 3061}, {"Ts7s8c2dAh4c9c", 6553},
	{"7hTc6hJdQh3d4h", 7019}, {"9d4sTd2hQsKs8d", 6713}, {"6s2s8sKs5c6h2d", 3249},
	{"9h8d8cKs9d6h4c", 3018}, {"Js3s6h9hQd4sQs", 3875}, {"2hQh4dTd2c3d7c", 6075},
	{"Qh7sAc4s6dQd9s", 3793}, {"Qs6s6c7sAh6hQd", 264}, {"9sJhQd6c7s3hAd", 6358},
	{"AhQs8dKh3c4cJd", 6186}, {"2d6d9d2hTh3s7d", 6130}, {"8dQcAs5cJd6sJh", 3997},
	{"4sKd2cJc4c2dQd", 3304}, {"6sTd7h7c8hKd4d", 4938}, {"3h6sJhAdQd2sKd", 6188},
	{"8d3c2h6hThKs5s", 6907}, {"Ah4sJh5h6d9dTc", 6471}, {"6c7h5d6s2sAh8c", 5125},
	{"JcKh7h4d4s4c4h", 131}, {"TcKc2c8d5h9hTh", 4277}, {"8cJh7h5sKcAdQd", 6186},
	{"8s4h9sQc3dAc6c", 6414}, {"Js3c9c4c2h9sAs", 4449}, {"7dQsAd9h7s4c3d", 4877},
	{"KdTcQhAh9d6h5c", 6193}, {"KhAs2hQs2sJs3h", 5965}, {"9d3d3sQs8hJh2s", 5846},
	{"Jc4h2c7h5h2s3h", 6120}, {"6s3h3sJh7hTh9c", 5881}, {"6h9dAhTh9cAcTc", 2503},
	{"3c8h7d6sJcQh2d", 7055}, {"5d8c5h2sTs9dKh", 5377}, {"8cKd2s2cQcJc3s", 6020},
	{"9dAs5s4dJd3c7s", 6504}, {"2c8hAhKd4s8s3d", 4652}, {"Qd6sAs6d5s7h8h", 5098},
	{"7h4cTcQd5cKs8s", 6720}, {"Ks9d2dKcAh6d2c", 2709}, {"9sTc3hKcAd2h8c", 6265},
	{"8hQcTc2h5c2d3s", 6074}, {"7d4h9dKc2sAs5s", 6300}, {"Ts2hKd5d2cKcTd", 2628},
	{"4s6s9hKhAdKc3s", 3574}, {"Js8sAd3c3dAcTh", 2579}, {"9d8c4h5d6h9hAh", 4460},
	{"Tc2s5dJs4cJcAs", 4008}, {"6d6cKsTd9dAh5h", 5087}, {"3hQc5d8dQh6cKd", 3845},
	{"JsTcTh4cAd3c8s", 4225}, {"6hAh2sTc2dJh6c", 3248}, {"7d3c7hQhAs5hJs", 4875},
	{"4s8s6c4c8hJh9h", 3130}, {"Kh6c7h8hTcTs4s", 4284}, {"8s9h3h3c7dKs9d", 3073},
	{"8sAc5sQc6dAh6h", 2545}, {"QsAd7d4cTd6h9d", 6386}, {"Js7hAc9d5h2hKd", 6238},
	{"3c3d5cJd7s8hQd", 5847}, {"2dAcJcKh3cQcAh", 3325}, {"Jh4s6dTd8c3sQh", 7014},
	{"2d6hAd3hKs4c8d", 6320}, {"Jc8sAc8hTh4sJs", 2852}, {"Qd8h4h9s6c8cAc", 4657},
	{"QcAh5hAdAc2s7c", 1624}, {"7h9h4dTd5c6c7d", 5030}, {"9h6c2hJdTs8d5h", 7216},
	{"7h3h9d9sJh3d5h", 3075}, {"AcJh2s7d7s6c2h", 3204}, {"5c2sKsTd6s9cTs", 4279},
	{"6s2c8s2sTs5h3s", 1527}, {"9s5s3s7h4dTsTd", 4376}, {"QcQd2s2cAs9hTs", 2819},
	{"9hKd4sKc8dTc7s", 3681}, {"9c6dKd3d7h9d5d", 1100}, {"TdKh3h4c8h3sKs", 2701},
	{"4s9dTc2sAsKd7h", 6266}, {"KcAd7hTh4hQs8h", 6194}, {"Qs7sJhQdAhTd9c", 3775},
	{"Th3s9h2cTd5c6c", 4380}, {"6hQd8hKc8sAdQs", 2753}, {"Js9h8c7cKhQh9d", 4480},
	{"6h2sTdAd6dKs2c", 3248}, {"AhQh5cJc7d7s6s", 4875}, {"KdTdTs2cAd4c6h", 4210},
	{"Kh3h7s8cJh8dAh", 4646}, {"8s3cQs9d8d6hQh", 2757}, {"7cAd3c9h6dQc8h", 6413},
	{"5s6c4c7s5h9s3d", 1606}, {"3hJdAh3s8hTh4d", 5764}, {"3sJdTs4h5h2h8c", 7245},
	{"Td5d3hJsQh4sTc", 4309}, {"Js8d2cAd3sJd7s", 4019}, {"8hJc3h3cTd2sAc", 5764},
	{"QdAhJcKdTc2hJs", 1599}, {"Qs5h2dQd8hKdKh", 2603}, {"QhQdJc9c2d8hJh", 2723},
	{"9c4dJc2d2h7d9d", 3086}, {"Ac8cTcThJs8h7s", 2940}, {"9d5c8d4hKsTdJd", 6797},
	{"2hKs4cTd6cJsKd", 3648}, {"6hQc8s9c9d4sJh", 4526}, {"9cKcJdAcTd7s6s", 6229},
	{"KhTcTs2d6hTd2c", 225}, {"Qh2c3d5c8sQd9s", 3931}, {"6cKd2d4hAc8hJh", 6245},
	{"7c2s6sJdAs6h2d", 3248}, {"Ad6c5cQc4c5hTh", 5316}, {"8dJc2d3s9hJd8s", 2856},
	{"JdQc9c3s7d2h5h", 7041}, {"7dJhKdAsJs7s5d", 2863}, {"7c5s4cKc7sTs8d", 4938},
	{"5h6d4s4h2d2sQd", 3305}, {"Kh8dKsTc3dQs7d", 3610}, {"9sJdKh4c7c5cJc", 4058},
	{"Qd6sJs8dKd3c3h", 5800}, {"Ad2d2cJcAc7d3h", 2590}, {"5s8dQh5h2d3d4h", 5428},
	{"KsQc7s5c6h4sKd", 3630}, {"3h7s9sTd3cTc5c", 2999}, {"5hKhJdAhKs6h2s", 3559},
	{"4cTd2sJhQc3s7c", 7021}, {"6s8sThJhJdJs2d", 1838}, {"9hQdJd6dTh5c2c", 7008},
	{"4dThJs9s9c6d7s", 4562}, {"6s8h8d5sKdQsKc", 2644}, {"2sTsKdTh7c4cKh", 2626},
	{"AsKdQc5h9c9hTd", 4425}, {"Ad8h5d4cJhThKs", 6230}, {"8cTdJd4s5d4d7h", 5662},
	{"5s8sQc8dTd4h7d", 4754}, {"2dAd4c2hQcKc7h", 5965}, {"7sKs3dKc5d7d6h", 2660},
	{"7s5d6h9dJc5s6d", 3218}, {"7hTc9d2s8h5sKc", 6881}, {"Kd2dQhKs6h4hJs", 3604},
	{"8s2c7c5c4dKc4s", 5610}, {"Ks7h9sAc5hJdAd", 3336}, {"9cAs7sAcTc4c8d", 3461},
	{"7s4cThTs3dJdQh", 4307}, {"6d5h2hThTs3s3c", 3002}, {"5sTsJhKh9s8hKs", 3645},
	{"6c9cKh2s3c5sKc", 3720}, {"9sKcKh7sQcKd8h", 1688}, {"3hKc7cAc6s5c9d", 6299},
	{"3s8c5s4d7h9d7d", 5051}, {"5hAd5dTd4d9c6h", 5332}, {"KsAsKh3dJh6c7c", 3558},
	{"Kh8sQd2h6s6dJs", 5140}, {"Jd2cKh3sKdQh2s", 2710}, {"AsKc9d4c5dKh9s", 2632},
	{"KdTh5hAd9dQs4c", 6193}, {"Ks5hJdJh5d9d6d", 2886}, {"5c8hAhKs9sAs3h", 3352},
	{"4dQs8cKsQcAcKh", 2599}, {"9hTcJc5hAc9c4d", 4444}, {"ThAh6c4h4c4s3c", 2272},
	{"6h8c9d3d4cAdAh", 3490}, {"7s8d5hKh2hTh4c", 6903}, {"Ac8c9cTd4dAs5d", 3461},
	{"KhJd8h5sAcAd4h", 3337}, {"2c6d5d7d2s4s7c", 3211}, {"Kh6h7c3h6c4h5h", 1139},
	{"8d7c8s8hAs5hTh", 2008}, {"3h8s5s2cTcQh4c", 7120}, {"QcJc6d7hTh2c4s", 7019},
	{"Tc5hTh2cQh4c8c", 4322}, {"3s7sQc9cTd8sQh", 3901}, {"Ts4dJd7cKc3c9h", 6798},
	{"6hKhJd8sKd6dKs", 185}, {"7c3dTc4cQhTd6s", 4326}, {"5d8d4hJd6hTd9d", 1354},
	{"7c8hAdQh9c6h8s", 4657}, {"2d3cTcJs7hJdJh", 1839}, {"5cQsAsQdKh3d6s", 3770},
	{"6sJsJh3cJcAhKc", 1807}, {"Tc8h5s2sAcJhJs", 4005}, {"8s5d2d4d6d5hJd", 1474},
	{"8c5d9sQd2h2s5c", 3283}, {"4dThQh9h4cKd2s", 5581}, {"5h5s2hAh9hTc5d", 2206},
	{"TcTsJc9c7c4d9s", 2932}, {"Jh9sJd6c5d7c9h", 2846}, {"5hTcKd2sThAsAd", 2500},
	{"6d9dQsQcJh7d4d", 3874}, {"9cQs3hQdQcKd9d", 194}, {"Jh5dJcTh7hQs2c", 4087},
	{"9h5hAc5d7sQs2d", 5317}, {"2hTc6d3cTh2c4c", 3013}, {"9d8s8hQdKdJh3c", 4700},
	{"2c8s6dJdJh4dQh", 4101}, {"3s6h3dTsKhQh5s", 5801}, {"Qs3d5dJcTsQc9c", 3865},
	{"9hJh3h9d6c4c8h", 4569}, {"Jd7c9d3dQh3h2d", 5846}, {"Qh5c6d8d9hJs7c", 1604},
	{"5cJs2d6sJcTd4d", 4139}, {"5dTc7sQc9s5h6s", 5413}, {"Ad6s2d7cJs7d4c", 4887},
	{"7s6sQc4h2h8c8s", 4766}, {"Js9c5c9sKsTh8d", 4489}, {"7dTsQdKdKc5dAd", 352},
	{"6hJdKcAd5h7d4h", 6250}, {"Jc5h9sQh5d9hJs", 2843}, {"8sAdAc3s9dQdKs", 3327},
	{"Th4h2h4d7sTs8d", 2989}, {"QdQhTh5sAd3sKh", 3766}, {"2dJsQs7h5hTs9d", 7007},
	{"KhKd2cQd3d9h3c", 2699}, {"4cKc6sJh5h6c9c", 5150}, {"9cJh5h2s4hJs7h", 4156},
	{"As5hQc2s7c8s4c", 6435}, {"5sKsAcJc3sTdTh", 4206}, {"QcJh5dAh7dAc9d", 3381},
	{"QdAhKhJcJd7s4c", 3985}, {"4sAh4cTh7cTsQd", 2984}, {"JhTh6h3c8s5cTc", 4349},
	{"9c3s4dKcTd8hQh", 6713}, {"Jc3h9s4h3sQc8d", 5846}, {"6cJh2c8c7cAd7s", 4886},
	{"3cQs6d4c7h9h9s", 4546}, {"2h3h8dKc8s5h6s", 4735}, {"7sKh8s6h4s7hKs", 2659},
	{"6h4h3sTh3d4cKc", 3293}, {"ThQsAsJh3d9h4s", 6349}, {"KsJd9s3d3c4d6s", 5810},
	{"9s4cAd7c6sAcKc", 3353}, {"AhJs7h4hAc9s5s", 3434}, {"5dAh9d9cJh8c8h", 3017},
	{"6c3s6hKcAs5s6s", 2137}, {"3h7d4c7s7cTc8h", 2110}, {"QsAc3dJc2d9hTc", 6349},
	{"3s8s7s6sAs3cTh", 783}, {"4s2hAh8h3d7c8d", 4687}, {"9hJs8sQcQs5hTs", 1601},
	{"Kd7cQd5c3h6dKh", 3630}, {"5c6h8c3c2hJd4c", 1607}, {"6cTcJhAhQd2cJd", 3995},
	{"KcAd4c6c4hTc7h", 5527}, {"3sAs3d6sKh7c5d", 5750}, {"7h8c9sAdQdJdJs", 3996},
	{"9h9s7sAc7dTs5c", 3028}, {"4sJsAs2d2h4c6c", 3303}, {"6s6d8s7hQs8hQd", 2758},
	{"4s7d7hQc4d2d4c", 293}, {"7c6hJc9d5d9sKc", 4491}, {"QsKh8d3s8c4s6c", 4704},
	{"TsQs6h9cQh3s9d", 2745}, {"7cKs6sJd4h6dAh", 5086}, {"6c9cTsTh5sJd8s", 4341},
	{"5h3cTc7s5d9sJc", 5441}, {"6s7d5sKh9d9sQd", 4483}, {"Ks2hKd3cQh8h8c", 2644},
	{"7dJcAd8c2sJh6c", 4019}, {"2h3sAh7c8dTh9h", 6553}, {"4hTcQhAd4sJh3h", 5535},
	{"7d8cKs8hAh5c2h", 4649}, {"9dTsJdAs5s4s5h", 5324}, {"3cQdQsJc7c3s2s", 2810},
	{"AsTs6c7h4h2dJh", 6482}, {"Kc7sKs9h2cTs3s", 3682}, {"6h8cTs3d6d4sJc", 5222},
	{"2hKh8dAc4sTd9d", 6265}, {"4d3sKs7s2s9cAd", 6301}, {"3d6dQh7h6h4d2d", 5212},
	{"2d8h2h9hAhJcQd", 5975}, {"9sJcTs7cAs5dJh", 4004}, {"9dKs8h4sQs4hKh", 2688},
	{"4d7d4s4h3s9s5c", 2315}, {"Jd2dQdAc7d8d8h", 1196}, {"6dTh7s8cJdTd4c", 4348},
	{"AsAcQs6d2c7hJc", 3383}, {"2d9hQc8d6sQd4c", 3930}, {"3sTs6cQs7c4cAh", 6398},
	{"Qd5h9d6c5s8cAd", 5317}, {"Jh9d6c8h5d7sQc", 1604}, {"3d4h8s4sJc7cQs", 5627},
	{"Jc9d9c5cJsAd6d", 2841}, {"QhJsJcJh8d4c5c", 1830}, {"3h7s9d5hAcTd5s", 5332},
	{"Td4c2d4s6cQdQs", 2800}, {"9s4s2s8sQsTd2d", 1296}, {"6c4h7sJd2hQsQc", 3886},
	{"8sKsTd7d9sTh8d", 2941}, {"7c9d8s2s3s9sJh", 4568}, {"Jd6sQd7d9s5hKc", 6686},
	{"JcAc6d2s8h9h6s", 5105}, {"8d6c4h8c6dQc9d", 3107}, {"5d2dTsJdAs9c3c", 6472},
	{"Qc3cJh8c3dKd9d", 5800}, {"6s8d5s9c4s3cKs", 6942}, {"3s8cKdKhJdTs9s", 3645},
	{"7d8h3c7hJd5h6d", 5014}, {"3d3h9sQs7s9c8h", 3074}, {"TdQs3s3c6c8d4d", 5854},
	{"3h9s7c7d2s9h4h", 3036}, {"4sJh7dQh9d5c8c", 7034}, {"4c6s6d2dAd9c8s", 5119},
	{"Jh7s2s5cJsQh9h", 4094}, {"Ks7sJhAhKdQc6h", 3545}, {"4cJhQs8hKc2sTd", 6678},
	{"TcJc9s2d5c9dQc", 4525}, {"8d5dJd7d8h3c6c", 4794}, {"5s7hJdKd3c4dQd", 6699},
	{"Kh6h5h8dKcQd6s", 2666}, {"TsTdQs4h2cJs4d", 2986}, {"5c3h9dJdKc2s9h", 4493},
	{"8sQsTs4h5sQhAc", 3785}, {"4c2sTc6h7cJh9s", 7221}, {"Qs2hKs4sJh9sQc", 3821},
	{"Jc2s9h6sQc7cTc", 7007}, {"8dKh8c9d9sJd7d", 3018}, {"AcTc8d6d2sAsKc", 3345},
	{"8dThJh2dTs4sAc", 4225}, {"7dJc2h8s4c9hJs", 4149}, {"QsJhKdTcKhAsJd", 1599},
	{"7s7cJdAs6s2cKd", 4866}, {"Kd2c6sAc2hJc7h", 5966}, {"Qs2d4d9d7s6h3c", 7162},
	{"As4cKs4sQsJsQc", 327}, {"2sAh5s8h4h7c9s", 6610}, {"7sKd4cThQh6d5d", 6726},
	{"Ac8d7cJh5s9h8h", 4665}, {"3c4sJd4d8d7hKd", 5591}, {"2s9cJc8c9hJs5d", 2845},
	{"JsTsKc4h8sKs6c", 3646}, {"ThAd2s6hTdKh3s", 4210}, {"2s8h8c3s9dJdJh", 2856},
	{"6cQh2h7c8dJh6h", 5187}, {"7c8s8hJs5h7d8c", 244}, {"8h6cKd7dQs5h2c", 6762},
	{"Qc2c9c9dJd4s2s", 3085}, {"2d4sJs6sTsTcQc", 4308}, {"3c4cKhJh3hAcKc", 2698},
	{"Js8d7dTdAcQsTs", 4215}, {"5d3cKh6d9cQc4c", 6752}, {"As6c6s9c3hJd8c", 5105},
	{"7cQc9cJc3hAdTc", 1144}, {"3c6cTd9d7s8dTc", 1603}, {"5sKs7h6c4sKd7c", 2660},
	{"3c4sJc7d4d2d6s", 5679}, {"Th5d7s7h9s6s9c", 3032}, {"TsTh4hKc6d3sAd", 4210},
	{"5hAc9s5sAd4c6d", 2559}, {"4cAd7d2hKcAc9d", 3353}, {"Ks4s2d4hJs3sJc", 2897},
	{"Jh4d6d8dKdJs7h", 4064}, {"2h2c2d4cTdThQd", 314}, {"AsJhTd7d9dQcJd", 3995},
	{"Qh7d3sJs3c4dAc", 5755}, {"4c7d5dKsTdQd7s", 4921}, {"KcTcJs7cKh6s4c", 3647},
	{"KhAhQhTc5dKc7s", 3546}, {"5c8sKc2d4h5d2s", 3282}, {"6s6dKh4h4c4d2c", 294},
	{"9sTh2c3dTs4hJs", 4345}, {"Qd3dKs9sKdAd5d", 361}, {"5h7d8hAd5cAs2s", 2560},
	{"3hAcQh8s8c6cTh", 4656}, {"9dQsQd2c5h7s2d", 2823}, {"Ks8cJd9d8h5c6s", 4710},
	{"9d8s5s7sJs4h4s", 1447}, {"9d8hAhAs5h4h3d", 3491}, {"6c2cQcJd7s4h9s", 7040},
	{"TcKd4sAs9sTd4d", 2984}, {"Js3cQh4h8s7dQd", 3880}, {"KcJdTsJcAc7hKd", 2610},
	{"Td2sQcQd2cKd3h", 2820}, {"8s7h6hTc7d2s3c", 5035}, {"8dJd6c4hQd8h2h", 4748},
	{"3hQs2hJcKcKh5d", 3605}, {"9c9h8c6s3c7s2s", 4610}, {"QcKhKs9dTh3d2h", 3609},
	{"3s4cQs4hTd3d5d", 3294}, {"5s6d6h8d5c9sQs", 3217}, {"AcKsJdQd4sJs9s", 3985},
	{"6cAs3sQh8h3h9c", 5757}, {"JcAsTh3cTc8s7h", 4225}, {"5dJd7c5cKc9sJh", 2886},
	{"7dKhJc5hTd3s5d", 5369}, {"3dJs2c9hKc9d4c", 4494}, {"Tc8sQh5h3sAd9c", 6385},
	{"JsKc2d8sTd8cJd", 2853}, {"6s8sAd9h5sAs6d", 2548}, {"9d8d2c8h4hKc3s", 4727},
	{"AdJhQc7c4d5sTd", 6351}, {"Qs9d8cJsTdKd8s", 1600}, {"QsJs8c9sKdAh8h", 4645},
	{"9dJd6sKdThAd3s", 6229}, {"Kh3c6h2h7dQh9h", 892}, {"7sJd6dTd9d4c4h", 5661},
	{"2d5sTc4d8sAd6c", 6579}, {"Th8h5cKsJh7dTc", 4270}, {"KsJs6cJh7s4dTs", 4051},
	{"JsKsJdAd4s2c2h", 2918}, {"5h5sQs8d6d7s3d", 5426}, {"KsQhQc8d2d9c2s", 2820},
	{"AcJs9c6hThTsQh", 4215}, {"2h6s4c3c4dKh9d", 5606}, {"6c8c2cKhKcTc7h", 1047},
	{"Td3d6d4dQdQc8d", 1254}, {"2cTs7d7h3s6c4c", 5041}, {"7h8dAhQc3cJs4d", 6364},
	{"Ac4h8h5s9sQdKs", 6201}, {"AhJhKc8dTs4sKh", 3555}, {"8sKs2d7d3c8h7c", 3095},
	{"Tc4dTsQh4c7hAs", 2984}, {"Qs9h6sKc7c4h2s", 6747}, {"Jh8c3cQd5d9hAd", 6357},
	{"2hTd7hAh7dAcKd", 2533}, {"JcKc5h9cQhJdJh", 1818}, {"6d9s9dAs3d8s5d", 4460},
	{"8h5s9s7sKh2d3d", 6938}, {"2h3c8s9d9c8cJs", 3020}, {"9c2cQd4s3cTc2d", 6073},
	{"Qd6cJd5cKs2c9h", 6687}, {"6d2d6s7h3h9s8c", 5270}, {"6c8h5h9h2h6d8s", 3110},
	{"3d6c8h2h3h6s4d", 3243}, {"Tc6s5h5dQc2c8c", 5414}, {"Th9d2hQcKs3s4s", 6717},
	{"Th5h8cAcKd5dTd", 2973}, {"4sAsJd9s8s7h7s", 748}, {"3c8s5cKsAs8h7c", 4649},
	{"7s8s7c3c2s7dQs", 2095}, {"8cKh5s7d4d3sAh", 6315}, {"4c8h5s7cJh4dQc", 5627},
	{"3cJsQhTsAd5cQd", 3775}, {"Jh4h9sQh7s8dQc", 3873}, {"Ah7c2hTs6c9d9s", 4453},
	{"KcJs5h3c9s9dAd", 4426}, {"7h2h5c8s7c6c3h", 5065}, {"AsQh3hKdAhJhQs", 2478},
	{"3d5h9sAd2h4s8s", 1608}, {"AcKh4hTcQhQcTs", 2731}, {"5h7sJs4c5cKd7h", 3172},
	{"Kc6c8h5c8s2c5d", 3117}, {"7d7h9h6d3hTdTh", 2955}, {"5sJsQsTs5dKhKc", 2677},
	{"Kc2s9hQh6dKhTd", 3609}, {"6h7c9c5c9sQs4h", 4546}, {"8hKc8s5c4s8c3s", 2022},
	{"5d6cAcJcJh4s4h", 2896}, {"Ac6dQdQs2d5sKd", 3770}, {"KcAc5s3s6s4s3d", 5751},
	{"Ts3dJc3sJh4dKc", 2908}, {"Ks6cJd9c2d7hJs", 4058}, {"TdJdAh6h2s9sTs", 4224},
	{"5h2cJc7h2h6dTc", 6103}, {"4d2h3cTh4sQc2s", 3305}, {"Ad9d4s8sTd2c8c", 4672},
	{"9sTsJhJd9c4s3c", 2844}, {"8hTcQd7s7hJdAd", 4875}, {"9h9c8h4sJcKc9s", 1951},
	{"Tc8sQsKh5s9c6d", 6713}, {"3dAs4d9h8sTsJc", 6469}, {"4h7d2s3dAcKs9c", 6301},
	{"8h9h9d4h5sAh6h", 752}, {"8hAhQcTh6sQh7d", 3785}, {"5c3hQcJs5dJc7s", 2887},
	{"9sThKsAc6c5dJc", 6229}, {"6c4d9s6d7d3sJd", 5229}, {"Ad3dAc2dQs3s4s", 2578},
	{"3d3cTdTcJc4cJd", 2838}, {"7s8hJsTsAs2s2d", 623}, {"6hJhJd3s6d5d2c", 2881},
	{"4sJc8sTc6cQcKs", 6678}, {"KhTd7sQhTsJh5h", 4260}, {"9sJc2hKsAd9d6h", 4426},
	{"3h2sTd7d5c5h9c", 5470}, {"7cKh2d6c3cAhKc", 3585}, {"4s6dJd8cAhQd2d", 6365},
	{"7dKhThAs4hAcKs", 2469}, {"9cTc2sAdQh6c5h", 6387}, {"JcJhAdQd4h7cJd", 1808},
	{"9s7sTsJs6c5sTh", 1359}, {"4d3hTcAcAh9s5c", 3464}, {"Tc3s8d2dTsKsKc", 2625},
	{"Ah7s4cQh6hAd2h", 3410}, {"KhTd7s5sTc9cJd", 4269}, {"3sJs7c4h2h7hTs", 5005},
	{"9d9cQcQhTd9hKd", 228}, {"5c5dJd7h5sAhTs", 2205}, {"QhQd4sAdTd4c3c", 2797},
	{"7h3c3d5cJcKhTs", 5809}, {"4c4dKhQs9h6cKc", 2688}, {"Td4d8sJdKs2sQs", 6678},
	{"2dJc5cJh9hAcQh", 3996}, {"6hQd9d2dKs3dKh", 3619}, {"9s3s6sJcJsAdAc", 2492},
	{"QsTc8d5h6s6dQd", 2778}, {"Jd6c7c7hJcJsKh", 208}, {"KcJhQs4sAdJsQd", 2720},
	{"AsQc9h8d9c2cTd", 4436}, {"8hKd3hTs4d6hJd", 6805}, {"JdTd4c7dKcAh2h", 6231},
	{"2h6hThKc6s8sQd", 5141}, {"5s8d8s7h9sQcTd", 4753}, {"7c6h4hQc2dTcTd", 4326},
	{"QhKh6h2c3dQs6s", 2776}, {"8cTdJhKd3s2cAs", 6230}, {"Th6h2sKs2hQsJc", 6020},
	{"8h6s9dKhJh2h5d", 6826}, {"4h7dQcJh4s8s6s", 5627}, {"3cAd9hKh5h4h4c", 5528},
	{"Jd8h8c3c6d8s5s", 2038}, {"6d4c8d8h4d2dJd", 1457}, {"9c6c9sAsKh8hTh", 4427},
	{"4c6d4s8s5d4hQh", 2293}, {"Jh4s4h6hAh4cTh", 625}, {"ThKs8h5d3c3s8c", 3139},
	{"Ks7dJs2dTcJc4d", 4051}, {"2h7s2c9c6d8hJh", 6108}, {"5s5d8c6cKd8sKh", 2649},
	{"8s3cKsAdAs4dAc", 1613}, {"3sQd7d9d3h4cQh", 2812}, {"TdAh5s5d6s4d7d", 5334},
	{"9c4d4hTs9h6cQh", 3063}, {"8h8c4h6dQd3c9d", 4761}, {"6dAs7s8cJhJcTh", 4005},
	{"8sJh6s7sAsJd2h", 4019}, {"QcTc3s7d8s3cAh", 5756}, {"As8d9dAc2cKc9h", 2511},
	{"9cTsThJhKh7d5c", 4269}, {"8cKh9hKcJhJsJc", 203}, {"Qc7hAh2d4cJd5s", 6371},
	{"5s2c6s2dAs7dKh", 5970}, {"Kh7d9sKd3cKc5h", 1714}, {"TdAdJc7s6d4dKh", 6231},
	{"8dKh7c2h9s9hAd", 4428}, {"TsQd3s4sJdKhKc", 3600}, {"6s3dAs5hQd9dKc", 6203},
	{"AsQs3d2cJh7dAc", 3383}, {"2sKcQs2d9sTc5h", 6021}, {"9s2d2s9dQh9hJh", 237},
	{"2dAc8d9dKd3c9s", 4428}, {"JcJd9h4sQdJh5h", 1829}, {"Jh2s6s9dAd5cQd", 6359},
	{"Td5h6c4hKd7h6d", 5159}, {"8dTc8c6d8h5h6s", 245}, {"9hKc6cQd5hTd8c", 6713},
	{"6cAdAh7hQd9dKh", 3327}, {"Js8h2d8cTs2c9s", 3152}, {"2h5c3sKs9dAd4d", 1608},
	{"2hKc5c4sTdQc3d", 6735}, {"3c5h8d2c5s2dAh", 3281}, {"TsAd7d8s9d7h7c", 2074},
	{"7sTd9cTs2dKhKd", 2624}, {"4c4hQhAcKd8hKs", 2687}, {"2c9dTcTs4sKd3s", 4281},
	{"9sJsAd4h4d3h3c", 3292}, {"AsAhQd3sQs2s5s", 604}, {"7d6c5cQhTs7s2d", 4975},
	{"8d6dJhAc7d6h4d", 5106}, {"5s8cTcJc6c2cTs", 1381}, {"Ah7d5dAdQh2d4d", 808},
	{"Qd4hTd5c4cKd8c", 5581}, {"Kd7d3cKc8cJd4h", 3660}, {"8hJsJhQdKh3c6h", 4042},
	{"6c6dKd3h2sJhKs", 2667}, {"2h4c7s6sJdQcKd", 6698}, {"8hQd4s2h8c3cJs", 4750},
	{"Jh5c7d6s5hTs7h", 3174}, {"AcAdKh5c8hQhKc", 2467}, {"7h8hTs9sKd2s7d", 4937},
	{"Kc6s4sQd8h3d9d", 6742}, {"4d2c3s7d4c7s7h", 259}, {"AcJhTs5s9c4hAs", 3425},
	{"AsJcJh9s8h2cTd", 4004}, {"6dQd9s3cJh2sTs", 7008}, {"4dKc9sQs3c7sTc", 6714},
	{"KdQcJd9dAh9s4c", 4425}, {"Kc4dAhTd6c7h3c", 6278}, {"JdAc3hKc9sJh2h", 3987},
	{"7h4d6c2h8h7d8d", 3100}, {"Td6sAs8hTcKcQc", 4205}, {"7h7c3dQdQs4dJd", 2766},
	{"AhKs7h8c5h4sTd", 6272}, {"8c9dQh6c7h3d9h", 4540}, {"7s3cAc7cJhKc9s", 4866},
	{"4dThTc5hAs8s9c", 4232}, {"8c2dQhKs7h3s6c", 6762}, {"AdQs2dAc3cTcTs", 2501},
	{"9d5sAcAh2d6c6s", 2548}, {"Kd9c4h8c7c7h6s", 4944}, {"JhQc5sKc7c3dKd", 3603},
	{"Qh3dJs8sKd3cTh", 5800}, {"2h7c8c8dAd4dJd", 4666}, {"Qd7hAd9s9d6sKh", 4425},
	{"9c8c3d8hTs6cKd", 4717}, {"3c5hThKsAh6cQs", 6196}, {"8d7s9dQh5c4cKs", 6741},
	{"3sAh6hJh7hJd2s", 4025}, {"9hJd8s8c8h4d2h", 2036}, {"7c3sKh6s8dTcJc", 6804},
	{"Ac8sAs3cKd5cTh", 3345}, {"3c3s4h7dAsQsKc", 5745}, {"6d5cQcJcJdJs5s", 210},
	{"5c7hQcKdAh2d9d", 6202}, {"QcKsTh2h5hJs3c", 6681}, {"Ac7hJh5dThAs3h", 3427},
	{"9sJh9c7hAs2sQc", 4435}, {"Qd5d7c4s9dKh2h", 6748}, {"AdTdQsAc8dKcTh", 2500},
	{"4hThJs5cAd8d5h", 5324}, {"7sQcQdKd9d5d7c", 2765}, {"9cAc3h3sJc4sJd", 2907},
	{"6c7d6sJdQh9sTd", 5185}, {"6hAc5h4h6dAsQc", 2545}, {"KsAh2h5s9h7s4c", 6300},
	{"9dAd8sAhQc6h7h", 3397}, {"Qd5cKh9hQc6cKc", 2602}, {"2d2hKh6s4c2s5c", 2418},
	{"Js9cTh8hAcTs7s", 1602}, {"9hQh4dJc2d4h6d", 5626}, {"2c5h8sAhQd2h4d", 5978},
	{"Kd4c6dTs7h4h6c", 3227}, {"Jh8h3s9d2sQh6d", 7035}, {"KhKsQc3cQs3d9s", 2602},
	{"Js3s8h5s7hTd2h", 7237}, {"6d8cAd5s6sKc5h", 3215}, {"6h3dKs8s9d3s4h", 5824},
	{"3hJh2s7c8s3s9s", 5888}, {"9h2sJhQs6d3s8h", 7035}, {"4c2s7hKcTh5sAs", 6279},
	{"2dQh4d9d2h8dKh", 6022}, {"Ac5h9dTs3hKc4h", 6268}, {"4h9s7dJd6cQh2d", 7040},
	{"2hKh7hAc6hQcAh", 469}, {"3dQc3s4c9h4hAs", 3292}, {"2dQhTh2s9d9hQd", 2745},
	{"3c4s6s6d7c9c6h", 2183}, {"2c6h8sKc2h5s7h", 6050}, {"5d2d8sAh5cAc4s", 2560},
	{"Jh2sQd9s7s6hJs", 4094}, {"Jd3s7h2cKc9s2s", 6030}, {"2sKsJc7dKhTd8d", 3646},
	{"Th4s9c3c6h2s6s", 5252}, {"8sTs2cTd7dQs3h", 4320}, {"6sTh6hAs6d2c2h", 273},
	{"Qd6d8sAc8d4cQs", 2753}, {"3dAdKsTdQc2d4h", 6198}, {"9d4c8h5dAc2c5c", 5339},
	{"Kc4c9cAs8s4sQs", 5525}, {"Qs8hQh9s7d4d2h", 3929}, {"9s2s6dAcTs3dKh", 6267},
	{"3d6c7hQcTsTd5c", 4326}, {"Kh5d6s6d2c5cJc", 3216}, {"9dQh4s2s2cAhTc", 5976},
	{"3hAs5hQs8hAh3c", 2578}, {"2s8s8h6dJc7sJh", 2857}, {"3s7h5h7s5dAc9c", 3171},
	{"3h9s8c7d3c2d6c", 5930}, {"3d9s2c2d7sAh8s", 5999}, {"8cTc5s2c7d5c8s", 3120},
	{"8s7s8h6sAd5s9s", 5}, {"8c7s8h8dAdQh7h", 244}, {"TsJc6s3hTdAh6d", 2962},
	{"3h9h7s6c4hJhKc", 6831}, {"Jd7h4d2sTc9c9s", 4562}, {"8dThKd6s8sAh3s", 4647},
	{"Th7sJs3cKhKs4d", 3647}, {"Ts6d7d2sJh7c5c", 5003}, {"8d7cJdJhQd9s9c", 2843},
	{"Ks4c7d2d4s8c3s", 5610}, {"3d7c5d6c3c2d8c", 5945},
}

func TestEvaluate7Fixtures(t *testing.T) {
	for _, fx := range evaluatorFixtures {
		hand := Evaluate7(must7(t, fx.cards))
		require.Equal(t, fx.index, hand.Index, "cards %s", fx.cards)
		require.Equal(t, CategoryOf(fx.index), hand.Category, "cards %s", fx.cards)
	}
}
