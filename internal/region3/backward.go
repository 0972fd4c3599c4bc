package region3

import (
	"fmt"

	"github.com/alexiusacademia/gosteam/internal/series"
	"github.com/alexiusacademia/gosteam/internal/subregion"
)

// Backward equations of the 2004 supplementary release on T(p,h), v(p,h),
// T(p,s), v(p,s), and of the 2014 release on p(h,s) and psat(h), psat(s).
// Pressures are reduced by 100 MPa in the (p,h) and (p,s) equations.

// θ(π + 0.240, η − 0.615)
var tpha = series.New([]series.Term{
	{N: -0.133645667811215e-6, I: -12, J: 0},
	{N: 0.455912656802978e-5, I: -12, J: 1},
	{N: -0.146294640700979e-4, I: -12, J: 2},
	{N: 0.639341312970080e-2, I: -12, J: 6},
	{N: 0.372783927268847e3, I: -12, J: 14},
	{N: -0.718654377460447e4, I: -12, J: 16},
	{N: 0.573494752103400e6, I: -12, J: 20},
	{N: -0.267569329111439e7, I: -12, J: 22},
	{N: -0.334066283302614e-4, I: -10, J: 1},
	{N: -0.245479214069597e-1, I: -10, J: 5},
	{N: 0.478087847764996e2, I: -10, J: 12},
	{N: 0.764664131818904e-5, I: -8, J: 0},
	{N: 0.128350627676972e-2, I: -8, J: 2},
	{N: 0.171219081377331e-1, I: -8, J: 4},
	{N: -0.851007304583213e1, I: -8, J: 10},
	{N: -0.136513461629781e-1, I: -5, J: 2},
	{N: -0.384460997596657e-5, I: -3, J: 0},
	{N: 0.337423807911655e-2, I: -2, J: 1},
	{N: -0.551624873066791, I: -2, J: 3},
	{N: 0.729202277107470, I: -2, J: 4},
	{N: -0.992522757376041e-2, I: -1, J: 0},
	{N: -0.119308831407288, I: -1, J: 2},
	{N: 0.793929190615421, I: 0, J: 0},
	{N: 0.454270731799386, I: 0, J: 1},
	{N: 0.209998591259910, I: 1, J: 1},
	{N: -0.642109823904738e-2, I: 3, J: 0},
	{N: -0.235155868604540e-1, I: 3, J: 1},
	{N: 0.252233108341612e-2, I: 4, J: 0},
	{N: -0.764885133368119e-2, I: 4, J: 3},
	{N: 0.136176427574291e-1, I: 10, J: 4},
	{N: -0.133027883575669e-1, I: 12, J: 5},
})

// θ(π + 0.298, η − 0.720)
var tphb = series.New([]series.Term{
	{N: 0.323254573644920e-4, I: -12, J: 0},
	{N: -0.127575556587181e-3, I: -12, J: 1},
	{N: -0.475851877356068e-3, I: -10, J: 0},
	{N: 0.156183014181602e-2, I: -10, J: 1},
	{N: 0.105724860113781, I: -10, J: 5},
	{N: -0.858514221132534e2, I: -10, J: 10},
	{N: 0.724140095480911e3, I: -10, J: 12},
	{N: 0.296475810273257e-2, I: -8, J: 0},
	{N: -0.592721983365988e-2, I: -8, J: 1},
	{N: -0.126305422818666e-1, I: -8, J: 2},
	{N: -0.115716196364853, I: -8, J: 4},
	{N: 0.849000969739595e2, I: -8, J: 10},
	{N: -0.108602260086615e-1, I: -6, J: 0},
	{N: 0.154304475328851e-1, I: -6, J: 1},
	{N: 0.750455441524466e-1, I: -6, J: 2},
	{N: 0.252520973612982e-1, I: -4, J: 0},
	{N: -0.602507901232996e-1, I: -4, J: 1},
	{N: -0.307622221350501e1, I: -3, J: 5},
	{N: -0.574011959864879e-1, I: -2, J: 0},
	{N: 0.503471360939849e1, I: -2, J: 4},
	{N: -0.925081888584834, I: -1, J: 2},
	{N: 0.391733882917546e1, I: -1, J: 4},
	{N: -0.773146007130190e2, I: -1, J: 6},
	{N: 0.949308762098587e4, I: -1, J: 10},
	{N: -0.141043719679409e7, I: -1, J: 14},
	{N: 0.849166230819026e7, I: -1, J: 16},
	{N: 0.861095729446704, I: 0, J: 0},
	{N: 0.323346442811720, I: 0, J: 2},
	{N: 0.873281936020439, I: 1, J: 1},
	{N: -0.436653048526683, I: 3, J: 1},
	{N: 0.286596714529479, I: 5, J: 1},
	{N: -0.131778331276228, I: 6, J: 1},
	{N: 0.676682064330275e-2, I: 8, J: 1},
})

// ω(π + 0.128, η − 0.727)
var vpha = series.New([]series.Term{
	{N: 0.529944062966028e-2, I: -12, J: 6},
	{N: -0.170099690234461, I: -12, J: 8},
	{N: 0.111323814312927e2, I: -12, J: 12},
	{N: -0.217898123145125e4, I: -12, J: 18},
	{N: -0.506061827980875e-3, I: -10, J: 4},
	{N: 0.556495239685324, I: -10, J: 7},
	{N: -0.943672726094016e1, I: -10, J: 10},
	{N: -0.297856807561527, I: -8, J: 5},
	{N: 0.939353943717186e2, I: -8, J: 12},
	{N: 0.192944939465981e-1, I: -6, J: 3},
	{N: 0.421740664704763, I: -6, J: 4},
	{N: -0.368914126282330e7, I: -6, J: 22},
	{N: -0.737566847600639e-2, I: -4, J: 2},
	{N: -0.354753242424366, I: -4, J: 3},
	{N: -0.199768169338727e1, I: -3, J: 7},
	{N: 0.115456297059049e1, I: -2, J: 3},
	{N: 0.568366875815960e4, I: -2, J: 16},
	{N: 0.808169540124668e-2, I: -1, J: 0},
	{N: 0.172416341519307, I: -1, J: 1},
	{N: 0.104270175292927e1, I: -1, J: 2},
	{N: -0.297691372792847, I: -1, J: 3},
	{N: 0.560394465163593, I: 0, J: 0},
	{N: 0.275234661176914, I: 0, J: 1},
	{N: -0.148347894866012, I: 1, J: 0},
	{N: -0.651142513478515e-1, I: 1, J: 1},
	{N: -0.292468715386302e1, I: 1, J: 2},
	{N: 0.664876096952665e-1, I: 2, J: 0},
	{N: 0.352335014263844e1, I: 2, J: 2},
	{N: -0.146340792313332e-1, I: 3, J: 0},
	{N: -0.224503486668184e1, I: 4, J: 2},
	{N: 0.110533464706142e1, I: 5, J: 2},
	{N: -0.408757344495612e-1, I: 8, J: 2},
})

// ω(π + 0.0661, η − 0.720)
var vphb = series.New([]series.Term{
	{N: -0.225196934336318e-8, I: -12, J: 0},
	{N: 0.140674363313486e-7, I: -12, J: 1},
	{N: 0.233784085280560e-5, I: -8, J: 0},
	{N: -0.331833715229001e-4, I: -8, J: 1},
	{N: 0.107956778514318e-2, I: -8, J: 3},
	{N: -0.271382067378863, I: -8, J: 6},
	{N: 0.107202262490333e1, I: -8, J: 7},
	{N: -0.853821329075382, I: -8, J: 8},
	{N: -0.215214194340526e-4, I: -6, J: 0},
	{N: 0.769656088222730e-3, I: -6, J: 1},
	{N: -0.431136580433864e-2, I: -6, J: 2},
	{N: 0.453342167309331, I: -6, J: 5},
	{N: -0.507749535873652, I: -6, J: 6},
	{N: -0.100475154528389e3, I: -6, J: 10},
	{N: -0.219201924648793, I: -4, J: 3},
	{N: -0.321087965668917e1, I: -4, J: 6},
	{N: 0.607567815637771e3, I: -4, J: 10},
	{N: 0.557686450685932e-3, I: -3, J: 0},
	{N: 0.187499040029550, I: -3, J: 2},
	{N: 0.905368030448107e-2, I: -2, J: 1},
	{N: 0.285417173048685, I: -2, J: 2},
	{N: 0.329924030996098e-1, I: -1, J: 0},
	{N: 0.239897419685483, I: -1, J: 1},
	{N: 0.482754995951394e1, I: -1, J: 4},
	{N: -0.118035753702231e2, I: -1, J: 5},
	{N: 0.169490044091791, I: 0, J: 0},
	{N: -0.179967222507787e-1, I: 1, J: 0},
	{N: 0.371810116332674e-1, I: 1, J: 1},
	{N: -0.536288335065096e-1, I: 2, J: 2},
	{N: 0.160697101092520e1, I: 2, J: 6},
})

// θ(π + 0.240, σ − 0.703)
var tpsa = series.New([]series.Term{
	{N: 0.150042008263875e10, I: -12, J: 28},
	{N: -0.159397258480424e12, I: -12, J: 32},
	{N: 0.502181140217975e-3, I: -10, J: 4},
	{N: -0.672057767855466e2, I: -10, J: 10},
	{N: 0.145058545404456e4, I: -10, J: 12},
	{N: -0.823889534888890e4, I: -10, J: 14},
	{N: -0.154852214233853, I: -8, J: 5},
	{N: 0.112305046746695e2, I: -8, J: 7},
	{N: -0.297000213482822e2, I: -8, J: 8},
	{N: 0.438565132635495e11, I: -8, J: 28},
	{N: 0.137837838635464e-2, I: -6, J: 2},
	{N: -0.297478527157462e1, I: -6, J: 6},
	{N: 0.971777947349413e13, I: -6, J: 32},
	{N: -0.571527767052398e-4, I: -5, J: 0},
	{N: 0.288307949778420e5, I: -5, J: 14},
	{N: -0.744428289262703e14, I: -5, J: 32},
	{N: 0.128017324848921e2, I: -4, J: 6},
	{N: -0.368275545889071e3, I: -4, J: 10},
	{N: 0.664768904779177e16, I: -4, J: 36},
	{N: 0.449359251958880e-1, I: -2, J: 1},
	{N: -0.422897836099655e1, I: -2, J: 4},
	{N: -0.240614376434179, I: -1, J: 1},
	{N: -0.474341365254924e1, I: -1, J: 6},
	{N: 0.724093999126110, I: 0, J: 0},
	{N: 0.923874349695897, I: 0, J: 1},
	{N: 0.399043655281015e1, I: 0, J: 4},
	{N: 0.384066651868009e-1, I: 1, J: 0},
	{N: -0.359344365571848e-2, I: 2, J: 0},
	{N: -0.735196448821653, I: 2, J: 3},
	{N: 0.188367048396131, I: 3, J: 2},
	{N: 0.141064266818704e-3, I: 8, J: 0},
	{N: -0.257418501496337e-2, I: 8, J: 1},
	{N: 0.123220024851555e-2, I: 10, J: 2},
})

// θ(π + 0.760, σ − 0.818)
var tpsb = series.New([]series.Term{
	{N: 0.527111701601660, I: -12, J: 1},
	{N: -0.401317830052742e2, I: -12, J: 3},
	{N: 0.153020073134484e3, I: -12, J: 4},
	{N: -0.224799398218827e4, I: -12, J: 7},
	{N: -0.193993484669048, I: -8, J: 0},
	{N: -0.140467557893768e1, I: -8, J: 1},
	{N: 0.426799878114024e2, I: -8, J: 3},
	{N: 0.752810643416743, I: -6, J: 0},
	{N: 0.226657238616417e2, I: -6, J: 2},
	{N: -0.622873556909932e3, I: -6, J: 4},
	{N: -0.660823667935396, I: -5, J: 0},
	{N: 0.841267087271658, I: -5, J: 1},
	{N: -0.253717501764397e2, I: -5, J: 2},
	{N: 0.485708963532948e3, I: -5, J: 4},
	{N: 0.880531517490555e3, I: -5, J: 6},
	{N: 0.265015592794626e7, I: -4, J: 12},
	{N: -0.359287150025783, I: -3, J: 1},
	{N: -0.656991567673753e3, I: -3, J: 6},
	{N: 0.241768149185367e1, I: -2, J: 2},
	{N: 0.856873461222588, I: 0, J: 0},
	{N: 0.655143675313458, I: 2, J: 1},
	{N: -0.213535213206406, I: 3, J: 1},
	{N: 0.562974957606348e-2, I: 4, J: 0},
	{N: -0.316955725450471e15, I: 5, J: 24},
	{N: -0.699997000152457e-3, I: 6, J: 0},
	{N: 0.119845803210767e-1, I: 8, J: 3},
	{N: 0.193848122022095e-4, I: 12, J: 1},
	{N: -0.215095749182309e-4, I: 14, J: 2},
})

// ω(π + 0.187, σ − 0.755)
var vpsa = series.New([]series.Term{
	{N: 0.795544074093975e2, I: -12, J: 10},
	{N: -0.238261242984590e4, I: -12, J: 12},
	{N: 0.176813100617787e5, I: -12, J: 14},
	{N: -0.110524727080379e-2, I: -10, J: 4},
	{N: -0.153213833655326e2, I: -10, J: 8},
	{N: 0.297544599376982e3, I: -10, J: 10},
	{N: -0.350315206871242e8, I: -10, J: 20},
	{N: 0.277513761062119, I: -8, J: 5},
	{N: -0.523964271036888, I: -8, J: 6},
	{N: -0.148011182995403e6, I: -8, J: 14},
	{N: 0.160014899374266e7, I: -8, J: 16},
	{N: 0.170802322663427e13, I: -6, J: 28},
	{N: 0.246866996006494e-3, I: -5, J: 1},
	{N: 0.165326084797980e1, I: -4, J: 5},
	{N: -0.118008384666987, I: -3, J: 2},
	{N: 0.253798642355900e1, I: -3, J: 4},
	{N: 0.965127704669424, I: -2, J: 3},
	{N: -0.282172420532826e2, I: -2, J: 8},
	{N: 0.203224612353823, I: -1, J: 1},
	{N: 0.110648186063513e1, I: -1, J: 2},
	{N: 0.526127948451280, I: 0, J: 0},
	{N: 0.277000018736321, I: 0, J: 1},
	{N: 0.108153340501132e1, I: 0, J: 3},
	{N: -0.744127885357893e-1, I: 1, J: 0},
	{N: 0.164094443541384e-1, I: 2, J: 0},
	{N: -0.680468275301065e-1, I: 4, J: 2},
	{N: 0.257988576101640e-1, I: 5, J: 2},
	{N: -0.145749861944416e-3, I: 6, J: 0},
})

// ω(π + 0.298, σ − 0.816)
var vpsb = series.New([]series.Term{
	{N: 0.591599780322238e-4, I: -12, J: 0},
	{N: -0.185465997137856e-2, I: -12, J: 1},
	{N: 0.104190510480013e-1, I: -12, J: 2},
	{N: 0.598647302038590e-2, I: -12, J: 3},
	{N: -0.771391189901699, I: -12, J: 5},
	{N: 0.172549765557036e1, I: -12, J: 6},
	{N: -0.467076079846526e-3, I: -10, J: 0},
	{N: 0.134533823384439e-1, I: -10, J: 1},
	{N: -0.808094336805495e-1, I: -10, J: 2},
	{N: 0.508139374365767, I: -10, J: 4},
	{N: 0.128584643361683e-2, I: -8, J: 0},
	{N: -0.163899353915435e1, I: -5, J: 1},
	{N: 0.586938199318063e1, I: -5, J: 2},
	{N: -0.292466667918613e1, I: -5, J: 3},
	{N: -0.614076301499537e-2, I: -4, J: 0},
	{N: 0.576199014049172e1, I: -4, J: 1},
	{N: -0.121613320606788e2, I: -4, J: 2},
	{N: 0.167637540957944e1, I: -4, J: 3},
	{N: -0.744135838773463e1, I: -3, J: 1},
	{N: 0.378168091437659e-1, I: -2, J: 0},
	{N: 0.401432203027688e1, I: -2, J: 1},
	{N: 0.160279837479185e2, I: -2, J: 2},
	{N: 0.317848779347728e1, I: -2, J: 3},
	{N: -0.358362310304853e1, I: -2, J: 4},
	{N: -0.115995260446827e7, I: -2, J: 12},
	{N: 0.199256573577909, I: 0, J: 0},
	{N: -0.122270624794624, I: 0, J: 1},
	{N: -0.191449143716586e2, I: 0, J: 2},
	{N: -0.150448002905284e-1, I: 1, J: 0},
	{N: 0.146407900162154e2, I: 1, J: 2},
	{N: -0.327477787188230e1, I: 2, J: 2},
})

// π(η − 1.01, σ − 0.750)
var phsa = series.New([]series.Term{
	{N: 0.770889828326934e1, I: 0, J: 0},
	{N: -0.260835009128688e2, I: 0, J: 1},
	{N: 0.267416218930389e3, I: 0, J: 5},
	{N: 0.172221089496844e2, I: 1, J: 0},
	{N: -0.293542332145970e3, I: 1, J: 3},
	{N: 0.614135601882478e3, I: 1, J: 4},
	{N: -0.610562757725674e5, I: 1, J: 8},
	{N: -0.651272251118219e8, I: 1, J: 14},
	{N: 0.735919313521937e5, I: 2, J: 6},
	{N: -0.116646505914191e11, I: 2, J: 16},
	{N: 0.355267086434461e2, I: 3, J: 0},
	{N: -0.596144543825955e3, I: 3, J: 2},
	{N: -0.475842430145708e3, I: 3, J: 3},
	{N: 0.696781965359503e2, I: 4, J: 0},
	{N: 0.335674250377312e3, I: 4, J: 1},
	{N: 0.250526809130882e5, I: 4, J: 4},
	{N: 0.146997380630766e6, I: 4, J: 5},
	{N: 0.538069315091534e20, I: 5, J: 28},
	{N: 0.143619827291346e22, I: 6, J: 28},
	{N: 0.364985866165994e20, I: 7, J: 24},
	{N: -0.254741561156775e4, I: 8, J: 1},
	{N: 0.240120197096563e28, I: 10, J: 32},
	{N: -0.393847464679496e30, I: 10, J: 36},
	{N: 0.147073407024852e25, I: 14, J: 22},
	{N: -0.426391250432059e32, I: 18, J: 28},
	{N: 0.194509340621077e39, I: 20, J: 36},
	{N: 0.666212132114896e24, I: 22, J: 16},
	{N: 0.706777016552858e34, I: 22, J: 28},
	{N: 0.175563621975576e42, I: 24, J: 36},
	{N: 0.108408607429124e29, I: 28, J: 16},
	{N: 0.730872705175151e44, I: 28, J: 36},
	{N: 0.159145847398870e25, I: 32, J: 10},
	{N: 0.377121605943324e41, I: 32, J: 28},
})

// 1/π(η − 0.681, σ − 0.792)
var phsb = series.New([]series.Term{
	{N: 0.125244360717979e-12, I: -12, J: 2},
	{N: -0.126599322553713e-1, I: -12, J: 10},
	{N: 0.506878030140626e1, I: -12, J: 12},
	{N: 0.317847171154202e2, I: -12, J: 14},
	{N: -0.391041161399932e6, I: -12, J: 20},
	{N: -0.975733406392044e-10, I: -10, J: 2},
	{N: -0.186312419488279e2, I: -10, J: 10},
	{N: 0.510973543414101e3, I: -10, J: 14},
	{N: 0.373847005822362e6, I: -10, J: 18},
	{N: 0.299804024666572e-7, I: -8, J: 2},
	{N: 0.200544393820342e2, I: -8, J: 8},
	{N: -0.498030487662829e-5, I: -6, J: 2},
	{N: -0.102301806360030e2, I: -6, J: 6},
	{N: 0.552819126990325e2, I: -6, J: 7},
	{N: -0.206211367510878e3, I: -6, J: 8},
	{N: -0.794012232324823e4, I: -5, J: 10},
	{N: 0.782248472028153e1, I: -4, J: 4},
	{N: -0.586544326902468e2, I: -4, J: 5},
	{N: 0.355073647696481e4, I: -4, J: 8},
	{N: -0.115303107290162e-3, I: -3, J: 1},
	{N: -0.175092403171802e1, I: -3, J: 3},
	{N: 0.257981687748160e3, I: -3, J: 5},
	{N: -0.727048374179467e3, I: -3, J: 6},
	{N: 0.121644822609198e-3, I: -2, J: 0},
	{N: 0.393137871762692e-1, I: -2, J: 1},
	{N: 0.704181005909296e-2, I: -1, J: 0},
	{N: -0.829108200698110e2, I: 0, J: 3},
	{N: -0.265178818131250, I: 2, J: 0},
	{N: 0.137531682453991e2, I: 2, J: 1},
	{N: -0.522394090753046e2, I: 5, J: 0},
	{N: 0.240556298941048e4, I: 6, J: 1},
	{N: -0.227361631268929e5, I: 8, J: 1},
	{N: 0.890746343932567e5, I: 10, J: 1},
	{N: -0.239234565822486e8, I: 14, J: 3},
	{N: 0.568795808129714e10, I: 14, J: 7},
})

// π(η − 1.02, η − 0.608)
var psath = series.New([]series.Term{
	{N: 0.600073641753024, I: 0, J: 0},
	{N: -0.936203654849857e1, I: 1, J: 1},
	{N: 0.246590798594147e2, I: 1, J: 3},
	{N: -0.107014222858224e3, I: 1, J: 4},
	{N: -0.915821315805768e14, I: 1, J: 36},
	{N: -0.862332011700662e4, I: 5, J: 3},
	{N: -0.235837344740032e2, I: 7, J: 0},
	{N: 0.252304969384128e18, I: 8, J: 24},
	{N: -0.389718771997719e19, I: 14, J: 16},
	{N: -0.333775713645296e23, I: 20, J: 16},
	{N: 0.356499469636328e11, I: 22, J: 3},
	{N: -0.148547544720641e27, I: 24, J: 18},
	{N: 0.330611514838798e19, I: 28, J: 8},
	{N: 0.813641294467829e38, I: 36, J: 24},
})

// π(σ − 1.03, σ − 0.699)
var psats = series.New([]series.Term{
	{N: 0.639767553612785, I: 0, J: 0},
	{N: -0.129727445396014e2, I: 1, J: 1},
	{N: -0.224595125848403e16, I: 1, J: 32},
	{N: 0.177466741801846e7, I: 4, J: 7},
	{N: 0.717079349571538e10, I: 12, J: 4},
	{N: -0.378829107169011e18, I: 12, J: 14},
	{N: -0.955586736431328e35, I: 16, J: 36},
	{N: 0.187269814676188e24, I: 24, J: 10},
	{N: 0.119254746466473e12, I: 28, J: 0},
	{N: 0.110649277244882e37, I: 32, J: 18},
})

// TPH returns T (K) from p (MPa) and h (kJ/kg).
func TPH(p, h float64) float64 {
	pi := p / 100
	switch sub := subregion.Region3PH(p, h); sub {
	case subregion.Region3A:
		return tpha.Value(pi+0.240, h/2300-0.615) * 760
	case subregion.Region3B:
		return tphb.Value(pi+0.298, h/2800-0.720) * 860
	default:
		panic(unknown(sub))
	}
}

// VPH returns v (m³/kg) from p (MPa) and h (kJ/kg).
func VPH(p, h float64) float64 {
	pi := p / 100
	switch sub := subregion.Region3PH(p, h); sub {
	case subregion.Region3A:
		return vpha.Value(pi+0.128, h/2100-0.727) * 0.0028
	case subregion.Region3B:
		return vphb.Value(pi+0.0661, h/2800-0.720) * 0.0088
	default:
		panic(unknown(sub))
	}
}

// TPS returns T (K) from p (MPa) and s (kJ/(kg·K)).
func TPS(p, s float64) float64 {
	pi := p / 100
	switch sub := subregion.Region3PS(p, s); sub {
	case subregion.Region3A:
		return tpsa.Value(pi+0.240, s/4.4-0.703) * 760
	case subregion.Region3B:
		return tpsb.Value(pi+0.760, s/5.3-0.818) * 860
	default:
		panic(unknown(sub))
	}
}

// VPS returns v (m³/kg) from p (MPa) and s (kJ/(kg·K)).
func VPS(p, s float64) float64 {
	pi := p / 100
	switch sub := subregion.Region3PS(p, s); sub {
	case subregion.Region3A:
		return vpsa.Value(pi+0.187, s/4.4-0.755) * 0.0028
	case subregion.Region3B:
		return vpsb.Value(pi+0.298, s/5.3-0.816) * 0.0088
	default:
		panic(unknown(sub))
	}
}

// PHS returns p (MPa) from h (kJ/kg) and s (kJ/(kg·K)).
func PHS(h, s float64) float64 {
	switch sub := subregion.Region3S(s); sub {
	case subregion.Region3A:
		return phsa.Value(h/2300-1.01, s/4.4-0.750) * 99
	case subregion.Region3B:
		return 16.6 / phsb.Value(h/2800-0.681, s/5.3-0.792)
	default:
		panic(unknown(sub))
	}
}

// PsatH returns the saturation pressure (MPa) on the region 3 part of the
// saturation line from the enthalpy of the saturated phase.
func PsatH(h float64) float64 {
	eta := h / 2600
	return psath.Value(eta-1.02, eta-0.608) * 22
}

// PsatS returns the saturation pressure (MPa) on the region 3 part of the
// saturation line from the entropy of the saturated phase.
func PsatS(s float64) float64 {
	sigma := s / 5.2
	return psats.Value(sigma-1.03, sigma-0.699) * 22
}

func unknown(sub subregion.Region3) string {
	return fmt.Sprintf("region3: unknown subregion %q", byte(sub))
}
