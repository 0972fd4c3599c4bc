package region2

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gosteam/internal/series"
	"github.com/alexiusacademia/gosteam/internal/subregion"
)

// θ(π, η − 2.1), IF97 Table 20
var tpha = series.New([]series.Term{
	{N: 0.10898952318288e4, I: 0, J: 0},
	{N: 0.84951654495535e3, I: 0, J: 1},
	{N: -0.10781748091826e3, I: 0, J: 2},
	{N: 0.33153654801263e2, I: 0, J: 3},
	{N: -0.74232016790248e1, I: 0, J: 7},
	{N: 0.11765048724356e2, I: 0, J: 20},
	{N: 0.18445749355790e1, I: 1, J: 0},
	{N: -0.41792700549624e1, I: 1, J: 1},
	{N: 0.62478196935812e1, I: 1, J: 2},
	{N: -0.17344563108114e2, I: 1, J: 3},
	{N: -0.20058176862096e3, I: 1, J: 7},
	{N: 0.27196065473796e3, I: 1, J: 9},
	{N: -0.45511318285818e3, I: 1, J: 11},
	{N: 0.30919688604755e4, I: 1, J: 18},
	{N: 0.25226640357872e6, I: 1, J: 44},
	{N: -0.61707422868339e-2, I: 2, J: 0},
	{N: -0.31078046629583, I: 2, J: 2},
	{N: 0.11670873077107e2, I: 2, J: 7},
	{N: 0.12812798404046e9, I: 2, J: 36},
	{N: -0.98554909623276e9, I: 2, J: 38},
	{N: 0.28224546973002e10, I: 2, J: 40},
	{N: -0.35948971410703e10, I: 2, J: 42},
	{N: 0.17227349913197e10, I: 2, J: 44},
	{N: -0.13551334240775e5, I: 3, J: 24},
	{N: 0.12848734664650e8, I: 3, J: 44},
	{N: 0.13865724283226e1, I: 4, J: 12},
	{N: 0.23598832556514e6, I: 4, J: 32},
	{N: -0.13105236545054e8, I: 4, J: 44},
	{N: 0.73999835474766e4, I: 5, J: 32},
	{N: -0.55196697030060e6, I: 5, J: 36},
	{N: 0.37154085996233e7, I: 5, J: 42},
	{N: 0.19127729239660e5, I: 6, J: 34},
	{N: -0.41535164835634e6, I: 6, J: 44},
	{N: -0.62459855192507e2, I: 7, J: 28},
})

// θ(π − 2, η − 2.6), IF97 Table 21
var tphb = series.New([]series.Term{
	{N: 0.14895041079516e4, I: 0, J: 0},
	{N: 0.74307798314034e3, I: 0, J: 1},
	{N: -0.97708318797837e2, I: 0, J: 2},
	{N: 0.24742464705674e1, I: 0, J: 12},
	{N: -0.63281320016026, I: 0, J: 18},
	{N: 0.11385952129658e1, I: 0, J: 24},
	{N: -0.47811863648625, I: 0, J: 28},
	{N: 0.85208123431544e-2, I: 0, J: 40},
	{N: 0.93747147377932, I: 1, J: 0},
	{N: 0.33593118604916e1, I: 1, J: 2},
	{N: 0.33809355601454e1, I: 1, J: 6},
	{N: 0.16844539671904, I: 1, J: 12},
	{N: 0.73875745236695, I: 1, J: 18},
	{N: -0.47128737436186, I: 1, J: 24},
	{N: 0.15020273139707, I: 1, J: 28},
	{N: -0.21764114219750e-2, I: 1, J: 40},
	{N: -0.21810755324761e-1, I: 2, J: 2},
	{N: -0.10829784403677, I: 2, J: 8},
	{N: -0.46333324635812e-1, I: 2, J: 18},
	{N: 0.71280351959551e-4, I: 2, J: 40},
	{N: 0.11032831789999e-3, I: 3, J: 1},
	{N: 0.18955248387902e-3, I: 3, J: 2},
	{N: 0.30891541160537e-2, I: 3, J: 12},
	{N: 0.13555504554949e-2, I: 3, J: 24},
	{N: 0.28640237477456e-6, I: 4, J: 2},
	{N: -0.10779857357512e-4, I: 4, J: 12},
	{N: -0.76462712454814e-4, I: 4, J: 18},
	{N: 0.14052392818316e-4, I: 4, J: 24},
	{N: -0.31083814331434e-4, I: 4, J: 28},
	{N: -0.10302738212103e-5, I: 4, J: 40},
	{N: 0.28217281635040e-6, I: 5, J: 18},
	{N: 0.12704902271945e-5, I: 5, J: 24},
	{N: 0.73803353468292e-7, I: 5, J: 40},
	{N: -0.11030139238909e-7, I: 6, J: 28},
	{N: -0.81456365207833e-13, I: 7, J: 2},
	{N: -0.25180545682962e-10, I: 7, J: 28},
	{N: -0.17565233969407e-17, I: 9, J: 1},
	{N: 0.86934156344163e-14, I: 9, J: 40},
})

// θ(π + 25, η − 1.8), IF97 Table 22
var tphc = series.New([]series.Term{
	{N: -0.32368398555242e13, I: -7, J: 0},
	{N: 0.73263350902181e13, I: -7, J: 4},
	{N: 0.35825089945447e12, I: -6, J: 0},
	{N: -0.58340131851590e12, I: -6, J: 2},
	{N: -0.10783068217470e11, I: -5, J: 0},
	{N: 0.20825544563171e11, I: -5, J: 2},
	{N: 0.61074783564516e6, I: -2, J: 0},
	{N: 0.85977722535580e6, I: -2, J: 1},
	{N: -0.25745723604170e5, I: -1, J: 0},
	{N: 0.31081088422714e5, I: -1, J: 2},
	{N: 0.12082315865936e4, I: 0, J: 0},
	{N: 0.48219755109255e3, I: 0, J: 1},
	{N: 0.37966001272486e1, I: 1, J: 4},
	{N: -0.10842984880077e2, I: 1, J: 8},
	{N: -0.45364172676660e-1, I: 2, J: 4},
	{N: 0.14559115658698e-12, I: 6, J: 0},
	{N: 0.11261597407230e-11, I: 6, J: 1},
	{N: -0.17804982240686e-10, I: 6, J: 4},
	{N: 0.12324579690832e-6, I: 6, J: 10},
	{N: -0.11606921130984e-5, I: 6, J: 12},
	{N: 0.27846367088554e-4, I: 6, J: 16},
	{N: -0.59270038474176e-3, I: 6, J: 20},
	{N: 0.12918582991878e-2, I: 6, J: 22},
})

// θ(π^0.25, σ − 2), IF97 Table 25; I holds four times the quarter-integer
// exponent of π.
var tpsa = series.New([]series.Term{
	{N: -392359.83861984, I: -6, J: -24},
	{N: 515265.7382727, I: -6, J: -23},
	{N: 40482.443161048, I: -6, J: -19},
	{N: -321.93790923902, I: -6, J: -13},
	{N: 96.961424218694, I: -6, J: -11},
	{N: -22.867846371773, I: -6, J: -10},
	{N: -449429.14124357, I: -5, J: -19},
	{N: -5011.8336020166, I: -5, J: -15},
	{N: 0.35684463560015, I: -5, J: -6},
	{N: 44235.33584819, I: -4, J: -26},
	{N: -13673.388811708, I: -4, J: -21},
	{N: 421632.60207864, I: -4, J: -17},
	{N: 22516.925837475, I: -4, J: -16},
	{N: 474.42144865646, I: -4, J: -9},
	{N: -149.31130797647, I: -4, J: -8},
	{N: -197811.26320452, I: -3, J: -15},
	{N: -23554.39947076, I: -3, J: -14},
	{N: -19070.616302076, I: -2, J: -26},
	{N: 55375.669883164, I: -2, J: -13},
	{N: 3829.3691437363, I: -2, J: -9},
	{N: -603.91860580567, I: -2, J: -7},
	{N: 1936.3102620331, I: -1, J: -27},
	{N: 4266.064369861, I: -1, J: -25},
	{N: -5978.0638872718, I: -1, J: -11},
	{N: -704.01463926862, I: -1, J: -6},
	{N: 338.36784107553, I: 1, J: 1},
	{N: 20.862786635187, I: 1, J: 4},
	{N: 0.033834172656196, I: 1, J: 8},
	{N: -4.3124428414893e-5, I: 1, J: 11},
	{N: 166.53791356412, I: 2, J: 0},
	{N: -139.86292055898, I: 2, J: 1},
	{N: -0.78849547999872, I: 2, J: 5},
	{N: 0.072132411753872, I: 2, J: 6},
	{N: -0.0059754839398283, I: 2, J: 10},
	{N: -1.2141358953904e-5, I: 2, J: 14},
	{N: 2.3227096733871e-7, I: 2, J: 16},
	{N: -10.538463566194, I: 3, J: 0},
	{N: 2.0718925496502, I: 3, J: 4},
	{N: -0.072193155260427, I: 3, J: 9},
	{N: 2.074988708112e-7, I: 3, J: 17},
	{N: -0.018340657911379, I: 4, J: 7},
	{N: 2.9036272348696e-7, I: 4, J: 18},
	{N: 0.21037527893619, I: 5, J: 3},
	{N: 0.00025681239729999, I: 5, J: 15},
	{N: -0.012799002933781, I: 6, J: 5},
	{N: -8.2198102652018e-6, I: 6, J: 18},
})

// θ(π, 10 − σ), IF97 Table 26
var tpsb = series.New([]series.Term{
	{N: 0.31687665083497e6, I: -6, J: 0},
	{N: 0.20864175881858e2, I: -6, J: 11},
	{N: -0.39859399803599e6, I: -5, J: 0},
	{N: -0.21816058518877e2, I: -5, J: 11},
	{N: 0.22369785194242e6, I: -4, J: 0},
	{N: -0.27841703445817e4, I: -4, J: 1},
	{N: 0.99207436071480e1, I: -4, J: 11},
	{N: -0.75197512299157e5, I: -3, J: 0},
	{N: 0.29708605951158e4, I: -3, J: 1},
	{N: -0.34406878548526e1, I: -3, J: 11},
	{N: 0.38815564249115, I: -3, J: 12},
	{N: 0.17511295085750e5, I: -2, J: 0},
	{N: -0.14237112854449e4, I: -2, J: 1},
	{N: 0.10943803364167e1, I: -2, J: 6},
	{N: 0.89971619308495, I: -2, J: 10},
	{N: -0.33759740098958e4, I: -1, J: 0},
	{N: 0.47162885818355e3, I: -1, J: 1},
	{N: -0.19188241993679e1, I: -1, J: 5},
	{N: 0.41078580492196, I: -1, J: 8},
	{N: -0.33465378172097, I: -1, J: 9},
	{N: 0.13870034777505e4, I: 0, J: 0},
	{N: -0.40663326195838e3, I: 0, J: 1},
	{N: 0.41727347159610e2, I: 0, J: 2},
	{N: 0.21932549434532e1, I: 0, J: 4},
	{N: -0.10320050009077e1, I: 0, J: 5},
	{N: 0.35882943516703, I: 0, J: 6},
	{N: 0.52511453726066e-2, I: 0, J: 9},
	{N: 0.12838916450705e2, I: 1, J: 0},
	{N: -0.28642437219381e1, I: 1, J: 1},
	{N: 0.56912683664855, I: 1, J: 2},
	{N: -0.99962954584931e-1, I: 1, J: 3},
	{N: -0.32632037778459e-2, I: 1, J: 7},
	{N: 0.23320922576723e-3, I: 1, J: 8},
	{N: -0.15334809857450, I: 2, J: 0},
	{N: 0.29072288239902e-1, I: 2, J: 1},
	{N: 0.37534702741167e-3, I: 2, J: 5},
	{N: 0.17296691702411e-2, I: 3, J: 0},
	{N: -0.38556050844504e-3, I: 3, J: 1},
	{N: -0.35017712292608e-4, I: 3, J: 3},
	{N: -0.14566393631492e-4, I: 4, J: 0},
	{N: 0.56420857267269e-5, I: 4, J: 1},
	{N: 0.41286150074605e-7, I: 5, J: 0},
	{N: -0.20684671118824e-7, I: 5, J: 1},
	{N: 0.16409393674725e-8, I: 5, J: 2},
})

// θ(π, 2 − σ), IF97 Table 27
var tpsc = series.New([]series.Term{
	{N: 0.90968501005365e3, I: -2, J: 0},
	{N: 0.24045667088420e4, I: -2, J: 1},
	{N: -0.59162326387130e3, I: -1, J: 0},
	{N: 0.54145404128074e3, I: 0, J: 0},
	{N: -0.27098308411192e3, I: 0, J: 1},
	{N: 0.97976525097926e3, I: 0, J: 2},
	{N: -0.46966772959435e3, I: 0, J: 3},
	{N: 0.14399274604723e2, I: 1, J: 0},
	{N: -0.19104204230429e2, I: 1, J: 1},
	{N: 0.53299167111971e1, I: 1, J: 3},
	{N: -0.21252975375934e2, I: 1, J: 4},
	{N: -0.31147334413760, I: 2, J: 0},
	{N: 0.60334840894623, I: 2, J: 1},
	{N: -0.42764839702509e-1, I: 2, J: 2},
	{N: 0.58185597255259e-2, I: 3, J: 0},
	{N: -0.14597008284753e-1, I: 3, J: 1},
	{N: 0.56631175631027e-2, I: 3, J: 5},
	{N: -0.76155864584577e-4, I: 4, J: 0},
	{N: 0.22440342919332e-3, I: 4, J: 1},
	{N: -0.12561095013413e-4, I: 4, J: 4},
	{N: 0.63323132660934e-6, I: 5, J: 0},
	{N: -0.20541989675375e-5, I: 5, J: 1},
	{N: 0.36405370390082e-7, I: 5, J: 2},
	{N: -0.29759897789215e-8, I: 6, J: 0},
	{N: 0.10136618529763e-7, I: 6, J: 1},
	{N: 0.59925719692351e-11, I: 7, J: 0},
	{N: -0.20677870105164e-10, I: 7, J: 1},
	{N: -0.20874278181886e-10, I: 7, J: 3},
	{N: 0.10162166825089e-9, I: 7, J: 4},
	{N: -0.16429828281347e-9, I: 7, J: 5},
})

// π^¼(η − 0.5, σ − 1.2), supplementary release on p(h,s), Table 6
var phsa = series.New([]series.Term{
	{N: -0.182575361923032e-1, I: 0, J: 1},
	{N: -0.125229548799536, I: 0, J: 3},
	{N: 0.592290437320145, I: 0, J: 6},
	{N: 0.604769706185122e1, I: 0, J: 16},
	{N: 0.238624965444474e3, I: 0, J: 20},
	{N: -0.298639090222922e3, I: 0, J: 22},
	{N: 0.512250813040750e-1, I: 1, J: 0},
	{N: -0.437266515606486, I: 1, J: 1},
	{N: 0.413336902999504, I: 1, J: 2},
	{N: -0.516468254574773e1, I: 1, J: 3},
	{N: -0.557014838445711e1, I: 1, J: 5},
	{N: 0.128555037824478e2, I: 1, J: 6},
	{N: 0.114144108953290e2, I: 1, J: 10},
	{N: -0.119504225652714e3, I: 1, J: 16},
	{N: -0.284777985961560e4, I: 1, J: 20},
	{N: 0.431757846408006e4, I: 1, J: 22},
	{N: 0.112894040802650e1, I: 2, J: 3},
	{N: 0.197409186206319e4, I: 2, J: 16},
	{N: 0.151612444706087e4, I: 2, J: 20},
	{N: 0.141324451421235e-1, I: 3, J: 0},
	{N: 0.585501282219601, I: 3, J: 2},
	{N: -0.297258075863012e1, I: 3, J: 3},
	{N: 0.594567314847319e1, I: 3, J: 6},
	{N: -0.623656565798905e4, I: 3, J: 16},
	{N: 0.965986235133332e4, I: 4, J: 16},
	{N: 0.681500934948134e1, I: 5, J: 3},
	{N: -0.633207286824489e4, I: 5, J: 16},
	{N: -0.558919224465760e1, I: 6, J: 3},
	{N: 0.400645798472063e-1, I: 7, J: 1},
})

// π^¼(η − 0.6, σ − 1.01), Table 7
var phsb = series.New([]series.Term{
	{N: 0.801496989929495e-1, I: 0, J: 0},
	{N: -0.543862807146111, I: 0, J: 1},
	{N: 0.337455597421283, I: 0, J: 2},
	{N: 0.890555451157450e1, I: 0, J: 4},
	{N: 0.313840736431485e3, I: 0, J: 8},
	{N: 0.797367065977789, I: 1, J: 0},
	{N: -0.121616973556240e1, I: 1, J: 1},
	{N: 0.872803386937477e1, I: 1, J: 2},
	{N: -0.169769781757602e2, I: 1, J: 3},
	{N: -0.186552827328416e3, I: 1, J: 5},
	{N: 0.951159274344237e5, I: 1, J: 12},
	{N: -0.189168510120494e2, I: 2, J: 1},
	{N: -0.433407037194840e4, I: 2, J: 6},
	{N: 0.543212633012715e9, I: 2, J: 18},
	{N: 0.144793408386013, I: 3, J: 0},
	{N: 0.128024559637516e3, I: 3, J: 1},
	{N: -0.672309534071268e5, I: 3, J: 7},
	{N: 0.336972380095287e8, I: 3, J: 12},
	{N: -0.586634196762720e3, I: 4, J: 1},
	{N: -0.221403224769889e11, I: 4, J: 16},
	{N: 0.171606668708389e4, I: 5, J: 1},
	{N: -0.570817595806302e9, I: 5, J: 12},
	{N: -0.312109693178482e4, I: 6, J: 1},
	{N: -0.207841384633010e7, I: 6, J: 8},
	{N: 0.305605946157786e13, I: 6, J: 18},
	{N: 0.322157004314333e4, I: 7, J: 1},
	{N: 0.326810259797295e12, I: 7, J: 16},
	{N: -0.144104158934487e4, I: 8, J: 1},
	{N: 0.410694867802691e3, I: 8, J: 3},
	{N: 0.109077066873024e12, I: 8, J: 14},
	{N: -0.247964654258893e14, I: 8, J: 18},
	{N: 0.188801906865134e10, I: 12, J: 10},
	{N: -0.123651009018773e15, I: 14, J: 16},
})

// π^¼(η − 0.7, σ − 1.1), Table 8
var phsc = series.New([]series.Term{
	{N: 0.112225607199012, I: 0, J: 0},
	{N: -0.339005953606712e1, I: 0, J: 1},
	{N: -0.320503911730094e2, I: 0, J: 2},
	{N: -0.197597305104900e3, I: 0, J: 3},
	{N: -0.407693861553446e3, I: 0, J: 4},
	{N: 0.132943775222331e5, I: 0, J: 8},
	{N: 0.170846839774007e1, I: 1, J: 0},
	{N: 0.373694198142245e2, I: 1, J: 2},
	{N: 0.358144365815434e4, I: 1, J: 5},
	{N: 0.423014446424664e6, I: 1, J: 8},
	{N: -0.751071025760063e9, I: 1, J: 14},
	{N: 0.523446127607898e2, I: 2, J: 2},
	{N: -0.228351290812417e3, I: 2, J: 3},
	{N: -0.960652417056937e6, I: 2, J: 7},
	{N: -0.807059292526074e8, I: 2, J: 10},
	{N: 0.162698017225669e13, I: 2, J: 18},
	{N: 0.772465073604171, I: 3, J: 0},
	{N: 0.463929973837746e5, I: 3, J: 5},
	{N: -0.137317885134128e8, I: 3, J: 8},
	{N: 0.170470392630512e13, I: 3, J: 16},
	{N: -0.251104628187308e14, I: 3, J: 18},
	{N: 0.317748830835520e14, I: 4, J: 18},
	{N: 0.538685623675312e2, I: 5, J: 1},
	{N: -0.553089094625169e5, I: 5, J: 4},
	{N: -0.102861522421405e7, I: 5, J: 6},
	{N: 0.204249418756234e13, I: 5, J: 14},
	{N: 0.273918446626977e9, I: 6, J: 8},
	{N: -0.263963146312685e16, I: 6, J: 18},
	{N: -0.107890854108088e10, I: 10, J: 7},
	{N: -0.296492620980124e11, I: 12, J: 7},
	{N: -0.111754907323424e16, I: 16, J: 10},
})

// TPH returns T (K) from p (MPa) and h (kJ/kg).
func TPH(p, h float64) float64 {
	return TPHIn(subregion.Region2PH(p, h), p, h)
}

// TPHIn evaluates T(p,h) with the equation of a known subregion.
func TPHIn(sub subregion.Region2, p, h float64) float64 {
	eta := h / 2000
	switch sub {
	case subregion.Region2A:
		return tpha.Value(p, eta-2.1)
	case subregion.Region2B:
		return tphb.Value(p-2, eta-2.6)
	case subregion.Region2C:
		return tphc.Value(p+25, eta-1.8)
	}
	panic(fmt.Sprintf("region2: unknown subregion %q", byte(sub)))
}

// TPS returns T (K) from p (MPa) and s (kJ/(kg·K)).
func TPS(p, s float64) float64 {
	return TPSIn(subregion.Region2PS(p, s), p, s)
}

// TPSIn evaluates T(p,s) with the equation of a known subregion.
func TPSIn(sub subregion.Region2, p, s float64) float64 {
	switch sub {
	case subregion.Region2A:
		return tpsa.Value(math.Sqrt(math.Sqrt(p)), s/2-2)
	case subregion.Region2B:
		return tpsb.Value(p, 10-s/0.7853)
	case subregion.Region2C:
		return tpsc.Value(p, 2-s/2.9251)
	}
	panic(fmt.Sprintf("region2: unknown subregion %q", byte(sub)))
}

// PHS returns p (MPa) from h (kJ/kg) and s (kJ/(kg·K)).
func PHS(h, s float64) float64 {
	return PHSIn(subregion.Region2HS(h, s), h, s)
}

// PHSIn evaluates p(h,s) with the equation of a known subregion.
func PHSIn(sub subregion.Region2, h, s float64) float64 {
	switch sub {
	case subregion.Region2A:
		return pow4(phsa.Value(h/4200-0.5, s/12-1.2)) * 4
	case subregion.Region2B:
		return pow4(phsb.Value(h/4100-0.6, s/7.9-1.01)) * 100
	case subregion.Region2C:
		return pow4(phsc.Value(h/3500-0.7, s/5.9-1.1)) * 100
	}
	panic(fmt.Sprintf("region2: unknown subregion %q", byte(sub)))
}

func pow4(x float64) float64 {
	x *= x
	return x * x
}
