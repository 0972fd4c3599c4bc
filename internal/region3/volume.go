package region3

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gosteam/internal/series"
	"github.com/alexiusacademia/gosteam/internal/subregion"
)

type transform int

const (
	plain        transform = iota
	sqrtPi                 // x1 = √(π − a)
	quarterTheta           // x2 = (θ − b)^¼
)

type post int

const (
	identity    post = iota
	fourth           // ω = Σ⁴
	exponential      // ω = exp Σ
)

// volumeEquation is one v(p,T) backward equation of the 2005
// supplementary release: v/v* = post(Σ n x1^I x2^J) with x1 = π − a and
// x2 = θ − b, modified by the transform.
type volumeEquation struct {
	vStar, pStar, tStar float64
	a, b                float64
	transform           transform
	post                post
	eq                  *series.Series
}

func (e *volumeEquation) v(p, T float64) float64 {
	x1 := p/e.pStar - e.a
	x2 := T/e.tStar - e.b
	switch e.transform {
	case sqrtPi:
		x1 = math.Sqrt(x1)
	case quarterTheta:
		x2 = math.Sqrt(math.Sqrt(x2))
	}
	w := e.eq.Value(x1, x2)
	switch e.post {
	case fourth:
		w *= w
		w *= w
	case exponential:
		w = math.Exp(w)
	}
	return w * e.vStar
}

// VPT returns v (m³/kg) of a region 3 state from p (MPa) and T (K).
func VPT(p, T float64) float64 {
	return VolumePT(subregion.Region3PT(p, T), p, T)
}

// VolumePT evaluates the v(p,T) equation of a given subregion. Region 4
// uses this to evaluate the saturated phases on the region 3 side of the
// saturation line, where the subregion is fixed by the phase.
func VolumePT(sub subregion.Volume, p, T float64) float64 {
	e, ok := volumes[sub]
	if !ok {
		panic(fmt.Sprintf("region3: unknown volume subregion %q", byte(sub)))
	}
	return e.v(p, T)
}

var volumes = map[subregion.Volume]*volumeEquation{
	subregion.VolumeA: {
		vStar: 0.0024, pStar: 100, tStar: 760, a: 0.085, b: 0.817,
		eq: series.New([]series.Term{
			{N: 0.110879558823853e-2, I: -12, J: 5},
			{N: 0.572616740810616e3, I: -12, J: 10},
			{N: -0.767051948380852e5, I: -12, J: 12},
			{N: -0.253321069529674e-1, I: -10, J: 5},
			{N: 0.628008049345689e4, I: -10, J: 10},
			{N: 0.234105654131876e6, I: -10, J: 12},
			{N: 0.216867826045856, I: -8, J: 5},
			{N: -0.156237904341963e3, I: -8, J: 8},
			{N: -0.269893956176613e5, I: -8, J: 10},
			{N: -0.180407100085505e-3, I: -6, J: 1},
			{N: 0.116732227668261e-2, I: -5, J: 1},
			{N: 0.266987040856040e2, I: -5, J: 5},
			{N: 0.282776617243286e5, I: -5, J: 10},
			{N: -0.242431520029523e4, I: -4, J: 8},
			{N: 0.435217323022733e-3, I: -3, J: 0},
			{N: -0.122494831387441e-1, I: -3, J: 1},
			{N: 0.179357604019989e1, I: -3, J: 3},
			{N: 0.442729521058314e2, I: -3, J: 6},
			{N: -0.593223489018342e-2, I: -2, J: 0},
			{N: 0.453186261685774, I: -2, J: 2},
			{N: 0.135825703129140e1, I: -2, J: 3},
			{N: 0.408748415856745e-1, I: -1, J: 0},
			{N: 0.474686397863312, I: -1, J: 1},
			{N: 0.118646814997915e1, I: -1, J: 2},
			{N: 0.546987265727549, I: 0, J: 0},
			{N: 0.195266770452643, I: 0, J: 1},
			{N: -0.502268790869663e-1, I: 1, J: 0},
			{N: -0.369645308193377, I: 1, J: 2},
			{N: 0.633828037528420e-2, I: 2, J: 0},
			{N: 0.797441793901017e-1, I: 2, J: 2},
		}),
	},
	subregion.VolumeB: {
		vStar: 0.0041, pStar: 100, tStar: 860, a: 0.28, b: 0.779,
		eq: series.New([]series.Term{
			{N: -0.827670470003621e-1, I: -12, J: 10},
			{N: 0.416887126010565e2, I: -12, J: 12},
			{N: 0.483651982197059e-1, I: -10, J: 8},
			{N: -0.291032084950276e5, I: -10, J: 14},
			{N: -0.111422582236948e3, I: -8, J: 8},
			{N: -0.202300083904014e-1, I: -6, J: 5},
			{N: 0.294002509338515e3, I: -6, J: 6},
			{N: 0.140244997609658e3, I: -6, J: 8},
			{N: -0.344384158811459e3, I: -5, J: 5},
			{N: 0.361182452612149e3, I: -5, J: 8},
			{N: -0.140699677420738e4, I: -5, J: 10},
			{N: -0.202023902676481e-2, I: -4, J: 2},
			{N: 0.171346792457471e3, I: -4, J: 4},
			{N: -0.425597804058632e1, I: -4, J: 5},
			{N: 0.691346085000334e-5, I: -3, J: 0},
			{N: 0.151140509678925e-2, I: -3, J: 1},
			{N: -0.416375290166236e-1, I: -3, J: 2},
			{N: -0.413754957011042e2, I: -3, J: 3},
			{N: -0.506673295721637e2, I: -3, J: 5},
			{N: -0.572212965569023e-3, I: -2, J: 0},
			{N: 0.608817368401785e1, I: -2, J: 2},
			{N: 0.239600660256161e2, I: -2, J: 5},
			{N: 0.122261479925384e-1, I: -1, J: 0},
			{N: 0.216356057692938e1, I: -1, J: 2},
			{N: 0.398198903368642, I: 0, J: 0},
			{N: -0.116892827834085, I: 0, J: 1},
			{N: -0.102845919373532, I: 1, J: 0},
			{N: -0.492676637589284, I: 1, J: 2},
			{N: 0.655540456406790e-1, I: 2, J: 0},
			{N: -0.240462535078530, I: 3, J: 2},
			{N: -0.269798180310075e-1, I: 4, J: 0},
			{N: 0.128369435967012, I: 4, J: 1},
		}),
	},
	subregion.VolumeC: {
		vStar: 0.0022, pStar: 40, tStar: 690, a: 0.259, b: 0.903,
		eq: series.New([]series.Term{
			{N: 0.311967788763030e1, I: -12, J: 6},
			{N: 0.276713458847564e5, I: -12, J: 8},
			{N: 0.322583103403269e8, I: -12, J: 10},
			{N: -0.342416065095363e3, I: -10, J: 6},
			{N: -0.899732529907377e6, I: -10, J: 8},
			{N: -0.793892049821251e8, I: -10, J: 10},
			{N: 0.953193003217388e2, I: -8, J: 5},
			{N: 0.229784742345072e4, I: -8, J: 6},
			{N: 0.175336675322499e6, I: -8, J: 7},
			{N: 0.791214365222792e7, I: -6, J: 8},
			{N: 0.319933345844209e-4, I: -5, J: 1},
			{N: -0.659508863555767e2, I: -5, J: 4},
			{N: -0.833426563212851e6, I: -5, J: 7},
			{N: 0.645734680583292e-1, I: -4, J: 2},
			{N: -0.382031020570813e7, I: -4, J: 8},
			{N: 0.406398848470079e-4, I: -3, J: 0},
			{N: 0.310327498492008e2, I: -3, J: 3},
			{N: -0.892996718483724e-3, I: -2, J: 0},
			{N: 0.234604891591616e3, I: -2, J: 4},
			{N: 0.377515668966951e4, I: -2, J: 5},
			{N: 0.158646812591361e-1, I: -1, J: 0},
			{N: 0.707906336241843, I: -1, J: 1},
			{N: 0.126016225146570e2, I: -1, J: 2},
			{N: 0.736143655772152, I: 0, J: 0},
			{N: 0.676544268999101, I: 0, J: 1},
			{N: -0.178100588189137e2, I: 0, J: 2},
			{N: -0.156531975531713, I: 1, J: 0},
			{N: 0.117707430048158e2, I: 1, J: 2},
			{N: 0.840143653860447e-1, I: 2, J: 0},
			{N: -0.186442467471949, I: 2, J: 1},
			{N: -0.440170203949645e2, I: 2, J: 3},
			{N: 0.123290423502494e7, I: 2, J: 7},
			{N: -0.240650039730845e-1, I: 3, J: 0},
			{N: -0.107077716660869e7, I: 3, J: 7},
			{N: 0.438319858566475e-1, I: 8, J: 1},
		}),
	},
	subregion.VolumeD: {
		vStar: 0.0029, pStar: 40, tStar: 690, a: 0.559, b: 0.939,
		post: fourth,
		eq: series.New([]series.Term{
			{N: -0.452484847171645e-9, I: -12, J: 4},
			{N: 0.315210389538801e-4, I: -12, J: 6},
			{N: -0.214991352047545e-2, I: -12, J: 7},
			{N: 0.508058874808345e3, I: -12, J: 10},
			{N: -0.127123036845932e8, I: -12, J: 12},
			{N: 0.115371133120497e13, I: -12, J: 16},
			{N: -0.197805728776273e-15, I: -10, J: 0},
			{N: 0.241554806033972e-10, I: -10, J: 2},
			{N: -0.156481703640525e-5, I: -10, J: 4},
			{N: 0.277211346836625e-2, I: -10, J: 6},
			{N: -0.203578994462286e2, I: -10, J: 8},
			{N: 0.144369489909053e7, I: -10, J: 10},
			{N: -0.411254217946539e11, I: -10, J: 14},
			{N: 0.623449786243773e-5, I: -8, J: 3},
			{N: -0.221774281146038e2, I: -8, J: 7},
			{N: -0.689315087933158e5, I: -8, J: 8},
			{N: -0.195419525060713e8, I: -8, J: 10},
			{N: 0.316373510564015e4, I: -6, J: 6},
			{N: 0.224040754426988e7, I: -6, J: 8},
			{N: -0.436701347922356e-5, I: -5, J: 1},
			{N: -0.404213852833996e-3, I: -5, J: 2},
			{N: -0.348153203414663e3, I: -5, J: 5},
			{N: -0.385294213555289e6, I: -5, J: 7},
			{N: 0.135203700099403e-6, I: -4, J: 0},
			{N: 0.134648383271089e-3, I: -4, J: 1},
			{N: 0.125031835351736e6, I: -4, J: 7},
			{N: 0.968123678455841e-1, I: -3, J: 2},
			{N: 0.225660517512438e3, I: -3, J: 4},
			{N: -0.190102435341872e-3, I: -2, J: 0},
			{N: -0.299628410819229e-1, I: -2, J: 1},
			{N: 0.500833915372121e-2, I: -1, J: 0},
			{N: 0.387842482998411, I: -1, J: 1},
			{N: -0.138535367777182e4, I: -1, J: 5},
			{N: 0.870745245971773, I: 0, J: 0},
			{N: 0.171946252068742e1, I: 0, J: 2},
			{N: -0.326650121426383e-1, I: 1, J: 0},
			{N: 0.498044171727877e4, I: 1, J: 6},
			{N: 0.551478022765087e-2, I: 3, J: 0},
		}),
	},
	subregion.VolumeE: {
		vStar: 0.0032, pStar: 40, tStar: 710, a: 0.587, b: 0.918,
		eq: series.New([]series.Term{
			{N: 0.715815808404721e9, I: -12, J: 14},
			{N: -0.114328360753449e12, I: -12, J: 16},
			{N: 0.376531002015720e-11, I: -10, J: 3},
			{N: -0.903983668691157e-4, I: -10, J: 6},
			{N: 0.665695908836252e6, I: -10, J: 10},
			{N: 0.535364174960127e10, I: -10, J: 14},
			{N: 0.794977402335603e11, I: -10, J: 16},
			{N: 0.922230563421437e2, I: -8, J: 7},
			{N: -0.142586073991215e6, I: -8, J: 8},
			{N: -0.111796381424162e7, I: -8, J: 10},
			{N: 0.896121629640760e4, I: -6, J: 6},
			{N: -0.669989239070491e4, I: -5, J: 6},
			{N: 0.451242538486834e-2, I: -4, J: 2},
			{N: -0.339731325977713e2, I: -4, J: 4},
			{N: -0.120523111552278e1, I: -3, J: 2},
			{N: 0.475992667717124e5, I: -3, J: 6},
			{N: -0.266627750390341e6, I: -3, J: 7},
			{N: -0.153314954386524e-3, I: -2, J: 0},
			{N: 0.305638404828265, I: -2, J: 1},
			{N: 0.123654999499486e3, I: -2, J: 3},
			{N: -0.104390794213011e4, I: -2, J: 4},
			{N: -0.157496516174308e-1, I: -1, J: 0},
			{N: 0.685331118940253, I: 0, J: 0},
			{N: 0.178373462873903e1, I: 0, J: 1},
			{N: -0.544674124878910, I: 1, J: 0},
			{N: 0.204529931318843e4, I: 1, J: 4},
			{N: -0.228342359328752e5, I: 1, J: 6},
			{N: 0.413197481515899, I: 2, J: 0},
			{N: -0.341931835910405e2, I: 2, J: 2},
		}),
	},
	subregion.VolumeF: {
		vStar: 0.0064, pStar: 40, tStar: 730, a: 0.587, b: 0.891,
		transform: sqrtPi, post: fourth,
		eq: series.New([]series.Term{
			{N: -0.251756547792325e-7, I: 0, J: -3},
			{N: 0.601307193668763e-5, I: 0, J: -2},
			{N: -0.100615977450049e-2, I: 0, J: -1},
			{N: 0.999969140252192, I: 0, J: 0},
			{N: 0.214107759236486e1, I: 0, J: 1},
			{N: -0.165175571959086e2, I: 0, J: 2},
			{N: -0.141987303638727e-2, I: 1, J: -1},
			{N: 0.269251915156554e1, I: 1, J: 1},
			{N: 0.349741815858722e2, I: 1, J: 2},
			{N: -0.300208695771783e2, I: 1, J: 3},
			{N: -0.131546288252539e1, I: 2, J: 0},
			{N: -0.839091277286169e1, I: 2, J: 1},
			{N: 0.181545608337015e-9, I: 3, J: -5},
			{N: -0.591099206478909e-3, I: 3, J: -2},
			{N: 0.152115067087106e1, I: 3, J: 0},
			{N: 0.252956470663225e-4, I: 4, J: -3},
			{N: 0.100726265203786e-14, I: 5, J: -8},
			{N: -0.149774533860650e1, I: 5, J: 1},
			{N: -0.793940970562969e-9, I: 6, J: -6},
			{N: -0.150290891264717e-3, I: 7, J: -4},
			{N: 0.151205531275133e1, I: 7, J: 1},
			{N: 0.470942606221652e-5, I: 10, J: -6},
			{N: 0.195049710391712e-12, I: 12, J: -10},
			{N: -0.911627886266077e-8, I: 12, J: -8},
			{N: 0.604374640201265e-3, I: 12, J: -4},
			{N: -0.225132933900136e-15, I: 14, J: -12},
			{N: 0.610916973582981e-11, I: 14, J: -10},
			{N: -0.303063908043404e-6, I: 14, J: -8},
			{N: -0.137796070798409e-4, I: 14, J: -6},
			{N: -0.919296736666106e-3, I: 14, J: -4},
			{N: 0.639288223132545e-9, I: 16, J: -10},
			{N: 0.753259479898699e-6, I: 16, J: -8},
			{N: -0.400321478682929e-12, I: 18, J: -12},
			{N: 0.756140294351614e-8, I: 18, J: -10},
			{N: -0.912082054034891e-11, I: 20, J: -12},
			{N: -0.237612381140539e-7, I: 20, J: -10},
			{N: 0.269586010591874e-4, I: 20, J: -6},
			{N: -0.732828135157839e-10, I: 22, J: -12},
			{N: 0.241995578306660e-9, I: 24, J: -12},
			{N: -0.405735532730322e-3, I: 24, J: -4},
			{N: 0.189424143498011e-9, I: 28, J: -12},
			{N: -0.486632965074563e-9, I: 32, J: -12},
		}),
	},
	subregion.VolumeG: {
		vStar: 0.0027, pStar: 25, tStar: 660, a: 0.872, b: 0.971,
		post: fourth,
		eq: series.New([]series.Term{
			{N: 0.412209020652996e-4, I: -12, J: 7},
			{N: -0.114987238280587e7, I: -12, J: 12},
			{N: 0.948180885032080e10, I: -12, J: 14},
			{N: -0.195788865718971e18, I: -12, J: 18},
			{N: 0.496250704871300e25, I: -12, J: 22},
			{N: -0.105549884548496e29, I: -12, J: 24},
			{N: -0.758642165988278e12, I: -10, J: 14},
			{N: -0.922172769596101e23, I: -10, J: 20},
			{N: 0.725379072059348e30, I: -10, J: 24},
			{N: -0.617718249205859e2, I: -8, J: 7},
			{N: 0.107555033344858e5, I: -8, J: 8},
			{N: -0.379545802336487e8, I: -8, J: 10},
			{N: 0.228646846221831e12, I: -8, J: 12},
			{N: -0.499741093010619e7, I: -6, J: 8},
			{N: -0.280214310054101e31, I: -6, J: 22},
			{N: 0.104915406769586e7, I: -5, J: 7},
			{N: 0.613754229168619e28, I: -5, J: 20},
			{N: 0.802056715528378e32, I: -4, J: 22},
			{N: -0.298617819828065e8, I: -3, J: 7},
			{N: -0.910782540134681e2, I: -2, J: 3},
			{N: 0.135033227281565e6, I: -2, J: 5},
			{N: -0.712949383408211e19, I: -2, J: 14},
			{N: -0.104578785289542e37, I: -2, J: 24},
			{N: 0.304331584444093e2, I: -1, J: 2},
			{N: 0.593250797959445e10, I: -1, J: 8},
			{N: -0.364174062110798e28, I: -1, J: 18},
			{N: 0.921791403532461, I: 0, J: 0},
			{N: -0.337693609657471, I: 0, J: 1},
			{N: -0.724644143758508e2, I: 0, J: 2},
			{N: -0.110480239272601, I: 1, J: 0},
			{N: 0.536516031875059e1, I: 1, J: 1},
			{N: -0.291441872156205e4, I: 1, J: 3},
			{N: 0.616338176535305e40, I: 3, J: 24},
			{N: -0.120889175861180e39, I: 5, J: 22},
			{N: 0.818396024524612e23, I: 6, J: 12},
			{N: 0.940781944835829e9, I: 8, J: 3},
			{N: -0.367279669545448e5, I: 10, J: 0},
			{N: -0.837513931798655e16, I: 10, J: 6},
		}),
	},
	subregion.VolumeH: {
		vStar: 0.0032, pStar: 25, tStar: 660, a: 0.898, b: 0.983,
		post: fourth,
		eq: series.New([]series.Term{
			{N: 0.561379678887577e-1, I: -12, J: 8},
			{N: 0.774135421587083e10, I: -12, J: 12},
			{N: 0.111482975877938e-8, I: -10, J: 4},
			{N: -0.143987128208183e-2, I: -10, J: 6},
			{N: 0.193696558764920e4, I: -10, J: 8},
			{N: -0.605971823585005e9, I: -10, J: 10},
			{N: 0.171951568124337e14, I: -10, J: 14},
			{N: -0.185461154985145e17, I: -10, J: 16},
			{N: 0.387851168078010e-16, I: -8, J: 0},
			{N: -0.395464327846105e-13, I: -8, J: 1},
			{N: -0.170875935679023e3, I: -8, J: 6},
			{N: -0.212010620701220e4, I: -8, J: 7},
			{N: 0.177683337348191e8, I: -8, J: 8},
			{N: 0.110177443629575e2, I: -6, J: 4},
			{N: -0.234396091693313e6, I: -6, J: 6},
			{N: -0.656174421999594e7, I: -6, J: 8},
			{N: 0.156362212977396e-4, I: -5, J: 2},
			{N: -0.212946257021400e1, I: -5, J: 3},
			{N: 0.135249306374858e2, I: -5, J: 4},
			{N: 0.177189164145813, I: -4, J: 2},
			{N: 0.139499167345464e4, I: -4, J: 4},
			{N: -0.703670932036388e-2, I: -3, J: 1},
			{N: -0.152011044389648, I: -3, J: 2},
			{N: 0.981916922991113e-4, I: -2, J: 0},
			{N: 0.147199658618076e-2, I: -1, J: 0},
			{N: 0.202618487025578e2, I: -1, J: 2},
			{N: 0.899345518944240, I: 0, J: 0},
			{N: -0.211346402240858, I: 1, J: 0},
			{N: 0.249971752957491e2, I: 1, J: 2},
		}),
	},
	subregion.VolumeI: {
		vStar: 0.0041, pStar: 25, tStar: 660, a: 0.91, b: 0.984,
		transform: sqrtPi, post: fourth,
		eq: series.New([]series.Term{
			{N: 0.106905684359136e1, I: 0, J: 0},
			{N: -0.148620857922333e1, I: 0, J: 1},
			{N: 0.259862256980408e15, I: 0, J: 10},
			{N: -0.446352055678749e-11, I: 1, J: -4},
			{N: -0.566620757170032e-6, I: 1, J: -2},
			{N: -0.235302885736849e-2, I: 1, J: -1},
			{N: -0.269226321968839, I: 1, J: 0},
			{N: 0.922024992944392e1, I: 2, J: 0},
			{N: 0.357633505503772e-11, I: 3, J: -5},
			{N: -0.173942565562222e2, I: 3, J: 0},
			{N: 0.700681785556229e-5, I: 4, J: -3},
			{N: -0.267050351075768e-3, I: 4, J: -2},
			{N: -0.231779669675624e1, I: 4, J: -1},
			{N: -0.753533046979752e-12, I: 5, J: -6},
			{N: 0.481337131452891e1, I: 5, J: -1},
			{N: -0.223286270422356e22, I: 5, J: 12},
			{N: -0.118746004987383e-4, I: 7, J: -4},
			{N: 0.646412934136496e-2, I: 7, J: -3},
			{N: -0.410588536330937e-9, I: 8, J: -6},
			{N: 0.422739537057241e20, I: 8, J: 10},
			{N: 0.313698180473812e-12, I: 10, J: -8},
			{N: 0.164395334345040e-23, I: 12, J: -12},
			{N: -0.339823323754373e-5, I: 12, J: -6},
			{N: -0.135268639905021e-1, I: 12, J: -4},
			{N: -0.723252514211625e-14, I: 14, J: -10},
			{N: 0.184386437538366e-8, I: 14, J: -8},
			{N: -0.463959533752385e-1, I: 14, J: -4},
			{N: -0.992263100376750e14, I: 14, J: 5},
			{N: 0.688169154439335e-16, I: 18, J: -12},
			{N: -0.222620998452197e-10, I: 18, J: -10},
			{N: -0.540843018624083e-7, I: 18, J: -8},
			{N: 0.345570606200257e-2, I: 18, J: -6},
			{N: 0.422275800304086e11, I: 18, J: 2},
			{N: -0.126974478770487e-14, I: 20, J: -12},
			{N: 0.927237985153679e-9, I: 20, J: -10},
			{N: 0.612670812016489e-13, I: 22, J: -12},
			{N: -0.722693924063497e-11, I: 24, J: -12},
			{N: -0.383669502636822e-3, I: 24, J: -8},
			{N: 0.374684572410204e-3, I: 32, J: -10},
			{N: -0.931976897511086e5, I: 32, J: -5},
			{N: -0.247690616026922e-1, I: 36, J: -10},
			{N: 0.658110546759474e2, I: 36, J: -8},
		}),
	},
	subregion.VolumeJ: {
		vStar: 0.0054, pStar: 25, tStar: 670, a: 0.875, b: 0.964,
		transform: sqrtPi, post: fourth,
		eq: series.New([]series.Term{
			{N: -0.111371317395540e-3, I: 0, J: -1},
			{N: 0.100342892423685e1, I: 0, J: 0},
			{N: 0.530615581928979e1, I: 0, J: 1},
			{N: 0.179058760078792e-5, I: 1, J: -2},
			{N: -0.728541958464774e-3, I: 1, J: -1},
			{N: -0.187576133371704e2, I: 1, J: 1},
			{N: 0.199060874071849e-2, I: 2, J: -1},
			{N: 0.243574755377290e2, I: 2, J: 1},
			{N: -0.177040785499444e-3, I: 3, J: -2},
			{N: -0.259680385227130e-2, I: 4, J: -2},
			{N: -0.198704578406823e3, I: 4, J: 2},
			{N: 0.738627790224287e-4, I: 5, J: -3},
			{N: -0.236264692844138e-2, I: 5, J: -2},
			{N: -0.161023121314333e1, I: 5, J: 0},
			{N: 0.622322971786473e4, I: 6, J: 3},
			{N: -0.960754116701669e-8, I: 10, J: -6},
			{N: -0.510572269720488e-10, I: 12, J: -8},
			{N: 0.767373781404211e-2, I: 12, J: -3},
			{N: 0.663855469485254e-14, I: 14, J: -10},
			{N: -0.717590735526745e-9, I: 14, J: -8},
			{N: 0.146564542926508e-4, I: 14, J: -5},
			{N: 0.309029474277013e-11, I: 16, J: -10},
			{N: -0.464216300971708e-15, I: 18, J: -12},
			{N: -0.390499637961161e-13, I: 20, J: -12},
			{N: -0.236716126781431e-9, I: 20, J: -10},
			{N: 0.454652854268717e-11, I: 24, J: -12},
			{N: -0.422271787482497e-2, I: 24, J: -6},
			{N: 0.283911742354706e-10, I: 28, J: -12},
			{N: 0.270929002720228e1, I: 28, J: -5},
		}),
	},
	subregion.VolumeK: {
		vStar: 0.0077, pStar: 25, tStar: 680, a: 0.802, b: 0.935,
		eq: series.New([]series.Term{
			{N: -0.401215699576099e9, I: -2, J: 10},
			{N: 0.484501478318406e11, I: -2, J: 12},
			{N: 0.394721471363678e-14, I: -1, J: -5},
			{N: 0.372629967374147e5, I: -1, J: 6},
			{N: -0.369794374168666e-29, I: 0, J: -12},
			{N: -0.380436407012452e-14, I: 0, J: -6},
			{N: 0.475361629970233e-6, I: 0, J: -2},
			{N: -0.879148916140706e-3, I: 0, J: -1},
			{N: 0.844317863844331, I: 0, J: 0},
			{N: 0.122433162656600e2, I: 0, J: 1},
			{N: -0.104529634830279e3, I: 0, J: 2},
			{N: 0.589702771277429e3, I: 0, J: 3},
			{N: -0.291026851164444e14, I: 0, J: 14},
			{N: 0.170343072841850e-5, I: 1, J: -3},
			{N: -0.277617606975748e-3, I: 1, J: -2},
			{N: -0.344709605486686e1, I: 1, J: 0},
			{N: 0.221333862447095e2, I: 1, J: 1},
			{N: -0.194646110037079e3, I: 1, J: 2},
			{N: 0.808354639772825e-15, I: 2, J: -8},
			{N: -0.180845209145470e-10, I: 2, J: -6},
			{N: -0.696664158132412e-5, I: 2, J: -3},
			{N: -0.181057560300994e-2, I: 2, J: -2},
			{N: 0.255830298579027e1, I: 2, J: 0},
			{N: 0.328913873658481e4, I: 2, J: 4},
			{N: -0.173270241249904e-18, I: 5, J: -12},
			{N: -0.661876792558034e-6, I: 5, J: -6},
			{N: -0.395688923421250e-2, I: 5, J: -3},
			{N: 0.604203299819132e-17, I: 6, J: -12},
			{N: -0.400879935920517e-13, I: 6, J: -10},
			{N: 0.160751107464958e-8, I: 6, J: -8},
			{N: 0.383719409025556e-4, I: 6, J: -5},
			{N: -0.649565446702457e-14, I: 8, J: -12},
			{N: -0.149095328506000e-11, I: 10, J: -12},
			{N: 0.541449377329581e-8, I: 12, J: -10},
		}),
	},
	subregion.VolumeL: {
		vStar: 0.0026, pStar: 24, tStar: 650, a: 0.908, b: 0.989,
		post: fourth,
		eq: series.New([]series.Term{
			{N: 0.260702058647537e10, I: -12, J: 14},
			{N: -0.188277213604704e15, I: -12, J: 16},
			{N: 0.554923870289667e19, I: -12, J: 18},
			{N: -0.758966946387758e23, I: -12, J: 20},
			{N: 0.413865186848908e27, I: -12, J: 22},
			{N: -0.815038000738060e12, I: -10, J: 14},
			{N: -0.381458260489955e33, I: -10, J: 24},
			{N: -0.123239564600519e-1, I: -8, J: 6},
			{N: 0.226095631437174e8, I: -8, J: 10},
			{N: -0.495017809506720e12, I: -8, J: 12},
			{N: 0.529482996422863e16, I: -8, J: 14},
			{N: -0.444359478746295e23, I: -8, J: 18},
			{N: 0.521635864527315e35, I: -8, J: 24},
			{N: -0.487095672740742e55, I: -8, J: 36},
			{N: -0.714430209937547e6, I: -6, J: 8},
			{N: 0.127868634615495, I: -5, J: 4},
			{N: -0.100752127917598e2, I: -5, J: 5},
			{N: 0.777451437960990e7, I: -4, J: 7},
			{N: -0.108105480796471e25, I: -4, J: 16},
			{N: -0.357578581169659e-5, I: -3, J: 1},
			{N: -0.212857169423484e1, I: -3, J: 3},
			{N: 0.270706111085238e30, I: -3, J: 18},
			{N: -0.695953622348829e33, I: -3, J: 20},
			{N: 0.110609027472280, I: -2, J: 2},
			{N: 0.721559163361354e2, I: -2, J: 3},
			{N: -0.306367307532219e15, I: -2, J: 10},
			{N: 0.265839618885530e-4, I: -1, J: 0},
			{N: 0.253392392889754e-1, I: -1, J: 1},
			{N: -0.214443041836579e3, I: -1, J: 3},
			{N: 0.937846601489667, I: 0, J: 0},
			{N: 0.223184043101700e1, I: 0, J: 1},
			{N: 0.338401222509191e2, I: 0, J: 2},
			{N: 0.494237237179718e21, I: 0, J: 12},
			{N: -0.198068404154428, I: 1, J: 0},
			{N: -0.141415349881140e31, I: 1, J: 16},
			{N: -0.993862421613651e2, I: 2, J: 1},
			{N: 0.125070534142731e3, I: 4, J: 0},
			{N: -0.996473529004439e3, I: 5, J: 0},
			{N: 0.473137909872765e5, I: 5, J: 1},
			{N: 0.116662121219322e33, I: 6, J: 14},
			{N: -0.315874976271533e16, I: 10, J: 4},
			{N: -0.445703369196945e33, I: 10, J: 12},
			{N: 0.642794932373694e33, I: 14, J: 10},
		}),
	},
	subregion.VolumeM: {
		vStar: 0.0028, pStar: 23, tStar: 650, a: 1, b: 0.997,
		transform: quarterTheta,
		eq: series.New([]series.Term{
			{N: 0.811384363481847, I: 0, J: 0},
			{N: -0.568199310990094e4, I: 3, J: 0},
			{N: -0.178657198172556e11, I: 8, J: 0},
			{N: 0.795537657613427e32, I: 20, J: 2},
			{N: -0.814568209346872e5, I: 1, J: 5},
			{N: -0.659774567602874e8, I: 3, J: 5},
			{N: -0.152861148659302e11, I: 4, J: 5},
			{N: -0.560165667510446e12, I: 5, J: 5},
			{N: 0.458384828593949e6, I: 1, J: 6},
			{N: -0.385754000383848e14, I: 6, J: 6},
			{N: 0.453735800004273e8, I: 2, J: 7},
			{N: 0.939454935735563e12, I: 4, J: 8},
			{N: 0.266572856432938e28, I: 14, J: 8},
			{N: -0.547578313899097e10, I: 2, J: 10},
			{N: 0.200725701112386e15, I: 5, J: 10},
			{N: 0.185007245563239e13, I: 3, J: 12},
			{N: 0.185135446828337e9, I: 0, J: 14},
			{N: -0.170451090076385e12, I: 1, J: 14},
			{N: 0.157890366037614e15, I: 1, J: 18},
			{N: -0.202530509748774e16, I: 1, J: 20},
			{N: 0.368193926183570e60, I: 28, J: 20},
			{N: 0.170215539458936e18, I: 2, J: 22},
			{N: 0.639234909918741e42, I: 16, J: 22},
			{N: -0.821698160721956e15, I: 0, J: 24},
			{N: -0.795260241872306e24, I: 5, J: 24},
			{N: 0.233415869478510e18, I: 0, J: 28},
			{N: -0.600079934586803e23, I: 3, J: 28},
			{N: 0.594584382273384e25, I: 4, J: 28},
			{N: 0.189461279349492e40, I: 12, J: 28},
			{N: -0.810093428842645e46, I: 16, J: 28},
			{N: 0.188813911076809e22, I: 1, J: 32},
			{N: 0.111052244098768e36, I: 8, J: 32},
			{N: 0.291133958602503e46, I: 14, J: 32},
			{N: -0.329421923951460e22, I: 0, J: 36},
			{N: -0.137570282536696e26, I: 2, J: 36},
			{N: 0.181508996303902e28, I: 3, J: 36},
			{N: -0.346865122768353e30, I: 4, J: 36},
			{N: -0.211961148774260e38, I: 8, J: 36},
			{N: -0.128617899887675e49, I: 14, J: 36},
			{N: 0.479817895699239e65, I: 24, J: 36},
		}),
	},
	subregion.VolumeN: {
		vStar: 0.0031, pStar: 23, tStar: 650, a: 0.976, b: 0.997,
		post: exponential,
		eq: series.New([]series.Term{
			{N: 0.280967799943151e-38, I: 0, J: -12},
			{N: 0.614869006573609e-30, I: 3, J: -12},
			{N: 0.582238667048942e-27, I: 4, J: -12},
			{N: 0.390628369238462e-22, I: 6, J: -12},
			{N: 0.821445758255119e-20, I: 7, J: -12},
			{N: 0.402137961842776e-14, I: 10, J: -12},
			{N: 0.651718171878301e-12, I: 12, J: -12},
			{N: -0.211773355803058e-7, I: 14, J: -12},
			{N: 0.264953354380072e-2, I: 18, J: -12},
			{N: -0.135031446451331e-31, I: 0, J: -10},
			{N: -0.607246643970893e-23, I: 3, J: -10},
			{N: -0.402352115234494e-18, I: 5, J: -10},
			{N: -0.744938506925544e-16, I: 6, J: -10},
			{N: 0.189917206526237e-12, I: 8, J: -10},
			{N: 0.364975183508473e-5, I: 12, J: -10},
			{N: 0.177274872361946e-25, I: 0, J: -8},
			{N: -0.334952758812999e-18, I: 3, J: -8},
			{N: -0.421537726098389e-8, I: 7, J: -8},
			{N: -0.391048167929649e-1, I: 12, J: -8},
			{N: 0.541276911564176e-13, I: 2, J: -6},
			{N: 0.705412100773699e-11, I: 3, J: -6},
			{N: 0.258585887897486e-8, I: 4, J: -6},
			{N: -0.493111362030162e-10, I: 2, J: -5},
			{N: -0.158649699894543e-5, I: 4, J: -5},
			{N: -0.525037427886100, I: 7, J: -5},
			{N: 0.220019901729615e-2, I: 4, J: -4},
			{N: -0.643064132636925e-2, I: 3, J: -3},
			{N: 0.629154149015048e2, I: 5, J: -3},
			{N: 0.135147318617061e3, I: 6, J: -3},
			{N: 0.240560808321713e-6, I: 0, J: -2},
			{N: -0.890763306701305e-3, I: 0, J: -1},
			{N: -0.440209599407714e4, I: 3, J: -1},
			{N: -0.302807107747776e3, I: 1, J: 0},
			{N: 0.159158748314599e4, I: 0, J: 1},
			{N: 0.232534272709876e6, I: 1, J: 1},
			{N: -0.792681207132600e6, I: 0, J: 2},
			{N: -0.869871364662769e11, I: 1, J: 4},
			{N: 0.354542769185671e12, I: 0, J: 5},
			{N: 0.400849240129329e15, I: 1, J: 6},
		}),
	},
	subregion.VolumeO: {
		vStar: 0.0034, pStar: 23, tStar: 650, a: 0.974, b: 0.996,
		transform: sqrtPi,
		eq: series.New([]series.Term{
			{N: 0.128746023979718e-34, I: 0, J: -12},
			{N: -0.735234770382342e-11, I: 0, J: -4},
			{N: 0.289078692149150e-2, I: 0, J: -1},
			{N: 0.244482731907223, I: 2, J: -1},
			{N: 0.141733492030985e-23, I: 3, J: -10},
			{N: -0.354533853059476e-28, I: 4, J: -12},
			{N: -0.594539202901431e-17, I: 4, J: -8},
			{N: -0.585188401782779e-8, I: 4, J: -5},
			{N: 0.201377325411803e-5, I: 4, J: -4},
			{N: 0.138647388209306e1, I: 4, J: -1},
			{N: -0.173959365084772e-4, I: 5, J: -4},
			{N: 0.137680878349369e-2, I: 5, J: -3},
			{N: 0.814897605805513e-14, I: 6, J: -8},
			{N: 0.425596631351839e-25, I: 7, J: -12},
			{N: -0.387449113787755e-17, I: 8, J: -10},
			{N: 0.139814747930240e-12, I: 8, J: -8},
			{N: -0.171849638951521e-2, I: 8, J: -4},
			{N: 0.641890529513296e-21, I: 10, J: -12},
			{N: 0.118960578072018e-10, I: 10, J: -8},
			{N: -0.155282762571611e-17, I: 14, J: -12},
			{N: 0.233907907347507e-7, I: 14, J: -8},
			{N: -0.174093247766213e-12, I: 20, J: -12},
			{N: 0.377682649089149e-8, I: 20, J: -10},
			{N: -0.516720236575302e-10, I: 24, J: -12},
		}),
	},
	subregion.VolumeP: {
		vStar: 0.0041, pStar: 23, tStar: 650, a: 0.972, b: 0.997,
		transform: sqrtPi,
		eq: series.New([]series.Term{
			{N: -0.982825342010366e-4, I: 0, J: -1},
			{N: 0.105145700850612e1, I: 0, J: 0},
			{N: 0.116033094095084e3, I: 0, J: 1},
			{N: 0.324664750281543e4, I: 0, J: 2},
			{N: -0.123592348610137e4, I: 1, J: 1},
			{N: -0.561403450013495e-1, I: 2, J: -1},
			{N: 0.856677401640869e-7, I: 3, J: -3},
			{N: 0.236313425393924e3, I: 3, J: 0},
			{N: 0.972503292350109e-2, I: 4, J: -2},
			{N: -0.103001994531927e1, I: 6, J: -2},
			{N: -0.149653706199162e-8, I: 7, J: -5},
			{N: -0.215743778861592e-4, I: 7, J: -4},
			{N: -0.834452198291445e1, I: 8, J: -2},
			{N: 0.586602660564988, I: 10, J: -3},
			{N: 0.343480022104968e-25, I: 12, J: -12},
			{N: 0.816256095947021e-5, I: 12, J: -6},
			{N: 0.294985697916798e-2, I: 12, J: -5},
			{N: 0.711730466276584e-16, I: 14, J: -10},
			{N: 0.400954763806941e-9, I: 14, J: -8},
			{N: 0.107766027032853e2, I: 14, J: -3},
			{N: -0.409449599138182e-6, I: 16, J: -8},
			{N: -0.729121307758902e-5, I: 18, J: -8},
			{N: 0.677107970938909e-8, I: 20, J: -10},
			{N: 0.602745973022975e-7, I: 22, J: -10},
			{N: -0.382323011855257e-10, I: 24, J: -12},
			{N: 0.179946628317437e-2, I: 24, J: -8},
			{N: -0.345042834640005e-3, I: 36, J: -12},
		}),
	},
	subregion.VolumeQ: {
		vStar: 0.0022, pStar: 23, tStar: 650, a: 0.848, b: 0.983,
		post: fourth,
		eq: series.New([]series.Term{
			{N: -0.820433843259950e5, I: -12, J: 10},
			{N: 0.473271518461586e11, I: -12, J: 12},
			{N: -0.805950021005413e-1, I: -10, J: 6},
			{N: 0.328600025435980e2, I: -10, J: 7},
			{N: -0.356617029982490e4, I: -10, J: 8},
			{N: -0.172985781433335e10, I: -10, J: 10},
			{N: 0.351769232729192e8, I: -8, J: 8},
			{N: -0.775489259985144e6, I: -6, J: 6},
			{N: 0.710346691966018e-4, I: -5, J: 2},
			{N: 0.993499883820274e5, I: -5, J: 5},
			{N: -0.642094171904570, I: -4, J: 3},
			{N: -0.612842816820083e4, I: -4, J: 4},
			{N: 0.232808472983776e3, I: -3, J: 3},
			{N: -0.142808220416837e-4, I: -2, J: 0},
			{N: -0.643596060678456e-2, I: -2, J: 1},
			{N: -0.428577227475614e1, I: -2, J: 2},
			{N: 0.225689939161918e4, I: -2, J: 4},
			{N: 0.100355651721510e-2, I: -1, J: 0},
			{N: 0.333491455143516, I: -1, J: 1},
			{N: 0.109697576888873e1, I: -1, J: 2},
			{N: 0.961917379376452, I: 0, J: 0},
			{N: -0.838165632204598e-1, I: 1, J: 0},
			{N: 0.247795908411492e1, I: 1, J: 1},
			{N: -0.319114969006533e4, I: 1, J: 3},
		}),
	},
	subregion.VolumeR: {
		vStar: 0.0054, pStar: 23, tStar: 650, a: 0.874, b: 0.982,
		eq: series.New([]series.Term{
			{N: 0.144165955660863e-2, I: -8, J: 6},
			{N: -0.701438599628258e13, I: -8, J: 14},
			{N: -0.830946716459219e-16, I: -3, J: -3},
			{N: 0.261975135368109, I: -3, J: 3},
			{N: 0.393097214706245e3, I: -3, J: 4},
			{N: -0.104334030654021e5, I: -3, J: 5},
			{N: 0.490112654154211e9, I: -3, J: 8},
			{N: -0.147104222772069e-3, I: 0, J: -1},
			{N: 0.103602748043408e1, I: 0, J: 0},
			{N: 0.305308890065089e1, I: 0, J: 1},
			{N: -0.399745276971264e7, I: 0, J: 5},
			{N: 0.569233719593750e-11, I: 3, J: -6},
			{N: -0.464923504407778e-1, I: 3, J: -2},
			{N: -0.535400396512906e-17, I: 8, J: -12},
			{N: 0.399988795693162e-12, I: 8, J: -10},
			{N: -0.536479560201811e-6, I: 8, J: -8},
			{N: 0.159536722411202e-1, I: 8, J: -5},
			{N: 0.270303248860217e-14, I: 10, J: -12},
			{N: 0.244247453858506e-7, I: 10, J: -10},
			{N: -0.983430636716454e-5, I: 10, J: -8},
			{N: 0.663513144224454e-1, I: 10, J: -6},
			{N: -0.993456957845006e1, I: 10, J: -5},
			{N: 0.546491323528491e3, I: 10, J: -4},
			{N: -0.143365406393758e5, I: 10, J: -3},
			{N: 0.150764974125511e6, I: 10, J: -2},
			{N: -0.337209709340105e-9, I: 12, J: -12},
			{N: 0.377501980025469e-8, I: 14, J: -12},
		}),
	},
	subregion.VolumeS: {
		vStar: 0.0022, pStar: 21, tStar: 640, a: 0.886, b: 0.99,
		post: fourth,
		eq: series.New([]series.Term{
			{N: -0.532466612140254e23, I: -12, J: 20},
			{N: 0.100415480000824e32, I: -12, J: 24},
			{N: -0.191540001821367e30, I: -10, J: 22},
			{N: 0.105618377808847e17, I: -8, J: 14},
			{N: 0.202281884477061e59, I: -6, J: 36},
			{N: 0.884585472596134e8, I: -5, J: 8},
			{N: 0.166540181638363e23, I: -5, J: 16},
			{N: -0.313563197669111e6, I: -4, J: 6},
			{N: -0.185662327545324e54, I: -4, J: 32},
			{N: -0.624942093918942e-1, I: -3, J: 3},
			{N: -0.504160724132590e10, I: -3, J: 8},
			{N: 0.187514491833092e5, I: -2, J: 4},
			{N: 0.121399979993217e-2, I: -1, J: 1},
			{N: 0.188317043049455e1, I: -1, J: 2},
			{N: -0.167073503962060e4, I: -1, J: 3},
			{N: 0.965961650599775, I: 0, J: 0},
			{N: 0.294885696802488e1, I: 0, J: 1},
			{N: -0.653915627346115e5, I: 0, J: 4},
			{N: 0.604012200163444e50, I: 0, J: 28},
			{N: -0.198339358557937, I: 1, J: 0},
			{N: -0.175984090163501e58, I: 1, J: 32},
			{N: 0.356314881403987e1, I: 3, J: 0},
			{N: -0.575991255144384e3, I: 3, J: 1},
			{N: 0.456213415338071e5, I: 3, J: 2},
			{N: -0.109174044987829e8, I: 4, J: 3},
			{N: 0.437796099975134e34, I: 4, J: 18},
			{N: -0.616552611135792e46, I: 4, J: 24},
			{N: 0.193568768917797e10, I: 5, J: 4},
			{N: 0.950898170425042e54, I: 14, J: 24},
		}),
	},
	subregion.VolumeT: {
		vStar: 0.0088, pStar: 20, tStar: 650, a: 0.803, b: 1.02,
		eq: series.New([]series.Term{
			{N: 0.155287249586268e1, I: 0, J: 0},
			{N: 0.664235115009031e1, I: 0, J: 1},
			{N: -0.289366236727210e4, I: 0, J: 4},
			{N: -0.385923202309848e13, I: 0, J: 12},
			{N: -0.291002915783761e1, I: 1, J: 0},
			{N: -0.829088246858083e12, I: 1, J: 10},
			{N: 0.176814899675218e1, I: 2, J: 0},
			{N: -0.534686695713469e9, I: 2, J: 6},
			{N: 0.160464608687834e18, I: 2, J: 14},
			{N: 0.196435366560186e6, I: 3, J: 3},
			{N: 0.156637427541729e13, I: 3, J: 8},
			{N: -0.178154560260006e1, I: 4, J: 0},
			{N: -0.229746237623692e16, I: 4, J: 10},
			{N: 0.385659001648006e8, I: 7, J: 3},
			{N: 0.110554446790543e10, I: 7, J: 4},
			{N: -0.677073830687349e14, I: 7, J: 7},
			{N: -0.327910592086523e31, I: 7, J: 20},
			{N: -0.341552040860644e51, I: 7, J: 36},
			{N: -0.527251339709047e21, I: 10, J: 10},
			{N: 0.245375640937055e24, I: 10, J: 12},
			{N: -0.168776617209269e27, I: 10, J: 14},
			{N: 0.358958955867578e29, I: 10, J: 16},
			{N: -0.656475280339411e36, I: 10, J: 22},
			{N: 0.355286045512301e39, I: 18, J: 18},
			{N: 0.569021454413270e58, I: 20, J: 32},
			{N: -0.700584546433113e48, I: 22, J: 22},
			{N: -0.705772623326374e65, I: 22, J: 36},
			{N: 0.166861176200148e53, I: 24, J: 24},
			{N: -0.300475129680486e61, I: 28, J: 28},
			{N: -0.668481295196808e51, I: 32, J: 22},
			{N: 0.428432338620678e69, I: 32, J: 32},
			{N: -0.444227367758304e72, I: 32, J: 36},
			{N: -0.281396013562745e77, I: 36, J: 36},
		}),
	},
	subregion.VolumeU: {
		vStar: 0.0026, pStar: 23, tStar: 650, a: 0.902, b: 0.988,
		eq: series.New([]series.Term{
			{N: 0.122088349258355e18, I: -12, J: 14},
			{N: 0.104216468608488e10, I: -10, J: 10},
			{N: -0.882666931564652e16, I: -10, J: 12},
			{N: 0.259929510849499e20, I: -10, J: 14},
			{N: 0.222612779142211e15, I: -8, J: 10},
			{N: -0.878473585050085e18, I: -8, J: 12},
			{N: -0.314432577551552e22, I: -8, J: 14},
			{N: -0.216934916996285e13, I: -6, J: 8},
			{N: 0.159079648196849e21, I: -6, J: 12},
			{N: -0.339567617303423e3, I: -5, J: 4},
			{N: 0.884387651337836e13, I: -5, J: 8},
			{N: -0.843405926846418e21, I: -5, J: 12},
			{N: 0.114178193518022e2, I: -3, J: 2},
			{N: -0.122708229235641e-3, I: -1, J: -1},
			{N: -0.106201671767107e3, I: -1, J: 1},
			{N: 0.903443213959313e25, I: -1, J: 12},
			{N: -0.693996270370852e28, I: -1, J: 14},
			{N: 0.648916718965575e-8, I: 0, J: -3},
			{N: 0.718957567127851e4, I: 0, J: 1},
			{N: 0.105581745346187e-2, I: 1, J: -2},
			{N: -0.651903203602581e15, I: 2, J: 5},
			{N: -0.160116813274676e25, I: 2, J: 10},
			{N: -0.510254294237837e-8, I: 3, J: -5},
			{N: -0.152355388953402, I: 5, J: -4},
			{N: 0.677143292290144e12, I: 5, J: 2},
			{N: 0.276378438378930e15, I: 5, J: 3},
			{N: 0.116862983141686e-1, I: 6, J: -5},
			{N: -0.301426947980171e14, I: 6, J: 2},
			{N: 0.169719813884840e-7, I: 8, J: -8},
			{N: 0.104674840020929e27, I: 8, J: 8},
			{N: -0.108016904560140e5, I: 10, J: -4},
			{N: -0.990623601934295e-12, I: 12, J: -12},
			{N: 0.536116483602738e7, I: 12, J: -4},
			{N: 0.226145963747881e22, I: 12, J: 4},
			{N: -0.488731565776210e-9, I: 14, J: -12},
			{N: 0.151001548880670e-4, I: 14, J: -10},
			{N: -0.227700464643920e5, I: 14, J: -6},
			{N: -0.781754507698846e28, I: 14, J: 6},
		}),
	},
	subregion.VolumeV: {
		vStar: 0.0031, pStar: 23, tStar: 650, a: 0.96, b: 0.995,
		eq: series.New([]series.Term{
			{N: -0.415652812061591e-54, I: -10, J: -8},
			{N: 0.177441742924043e-60, I: -8, J: -12},
			{N: -0.357078668203377e-54, I: -6, J: -12},
			{N: 0.359252213604114e-25, I: -6, J: -3},
			{N: -0.259123736380269e2, I: -6, J: 5},
			{N: 0.594619766193460e5, I: -6, J: 6},
			{N: -0.624184007103158e11, I: -6, J: 8},
			{N: 0.313080299915944e17, I: -6, J: 10},
			{N: 0.105006446192036e-8, I: -5, J: 1},
			{N: -0.192824336984852e-5, I: -5, J: 2},
			{N: 0.654144373749937e6, I: -5, J: 6},
			{N: 0.513117462865044e13, I: -5, J: 8},
			{N: -0.697595750347391e19, I: -5, J: 10},
			{N: -0.103977184454767e29, I: -5, J: 14},
			{N: 0.119563135540666e-47, I: -4, J: -12},
			{N: -0.436677034051655e-41, I: -4, J: -10},
			{N: 0.926990036530639e-29, I: -4, J: -6},
			{N: 0.587793105620748e21, I: -4, J: 10},
			{N: 0.280375725094731e-17, I: -3, J: -3},
			{N: -0.192359972440634e23, I: -3, J: 10},
			{N: 0.742705723302738e27, I: -3, J: 12},
			{N: -0.517429682450605e2, I: -2, J: 2},
			{N: 0.820612048645469e7, I: -2, J: 4},
			{N: -0.188214882341448e-8, I: -1, J: -2},
			{N: 0.184587261114837e-1, I: -1, J: 0},
			{N: -0.135830407782663e-5, I: 0, J: -2},
			{N: -0.723681885626348e17, I: 0, J: 6},
			{N: -0.223449194054124e27, I: 0, J: 10},
			{N: -0.111526741826431e-34, I: 1, J: -12},
			{N: 0.276032601145151e-28, I: 1, J: -10},
			{N: 0.134856491567853e15, I: 3, J: 3},
			{N: 0.652440293345860e-9, I: 4, J: -6},
			{N: 0.510655119774360e17, I: 4, J: 3},
			{N: -0.468138358908732e32, I: 4, J: 10},
			{N: -0.760667491183279e16, I: 5, J: 2},
			{N: -0.417247986986821e-18, I: 8, J: -12},
			{N: 0.312545677756104e14, I: 10, J: -2},
			{N: -0.100375333864186e15, I: 12, J: -3},
			{N: 0.247761392329058e27, I: 14, J: 1},
		}),
	},
	subregion.VolumeW: {
		vStar: 0.0039, pStar: 23, tStar: 650, a: 0.959, b: 0.995,
		post: fourth,
		eq: series.New([]series.Term{
			{N: -0.586219133817016e-7, I: -12, J: 8},
			{N: -0.894460355005526e11, I: -12, J: 14},
			{N: 0.531168037519774e-30, I: -10, J: -1},
			{N: 0.109892402329239, I: -10, J: 8},
			{N: -0.575368389425212e-1, I: -8, J: 6},
			{N: 0.228276853990249e5, I: -8, J: 8},
			{N: -0.158548609655002e19, I: -8, J: 14},
			{N: 0.329865748576503e-27, I: -6, J: -4},
			{N: -0.634987981190669e-24, I: -6, J: -3},
			{N: 0.615762068640611e-8, I: -6, J: 2},
			{N: -0.961109240985747e8, I: -6, J: 8},
			{N: -0.406274286652625e-44, I: -5, J: -10},
			{N: -0.471103725498077e-12, I: -4, J: -1},
			{N: 0.725937724828145, I: -4, J: 3},
			{N: 0.187768525763682e-38, I: -3, J: -10},
			{N: -0.103308436323771e4, I: -3, J: 3},
			{N: -0.662552816342168e-1, I: -2, J: 1},
			{N: 0.579514041765710e3, I: -2, J: 2},
			{N: 0.237416732616644e-26, I: -1, J: -8},
			{N: 0.271700235739893e-14, I: -1, J: -4},
			{N: -0.907886213483600e2, I: -1, J: 1},
			{N: -0.171242509570207e-36, I: 0, J: -12},
			{N: 0.156792067854621e3, I: 0, J: 1},
			{N: 0.923261357901470, I: 1, J: -1},
			{N: -0.597865988422577e1, I: 2, J: -1},
			{N: 0.321988767636389e7, I: 2, J: 2},
			{N: -0.399441390042203e-29, I: 3, J: -12},
			{N: 0.493429086046981e-7, I: 3, J: -5},
			{N: 0.812036983370565e-19, I: 5, J: -10},
			{N: -0.207610284654137e-11, I: 5, J: -8},
			{N: -0.340821291419719e-6, I: 5, J: -6},
			{N: 0.542000573372233e-17, I: 8, J: -12},
			{N: -0.856711586510214e-12, I: 8, J: -10},
			{N: 0.266170454405981e-13, I: 10, J: -12},
			{N: 0.858133791857099e-5, I: 10, J: -8},
		}),
	},
	subregion.VolumeX: {
		vStar: 0.0049, pStar: 23, tStar: 650, a: 0.91, b: 0.988,
		eq: series.New([]series.Term{
			{N: 0.377373741298151e19, I: -8, J: 14},
			{N: -0.507100883722913e13, I: -6, J: 10},
			{N: -0.103363225598860e16, I: -5, J: 10},
			{N: 0.184790814320773e-5, I: -4, J: 1},
			{N: -0.924729378390945e-3, I: -4, J: 2},
			{N: -0.425999562292738e24, I: -4, J: 14},
			{N: -0.462307771873973e-12, I: -3, J: -2},
			{N: 0.107319065855767e22, I: -3, J: 12},
			{N: 0.648662492280682e11, I: -1, J: 5},
			{N: 0.244200600688281e1, I: 0, J: 0},
			{N: -0.851535733484258e10, I: 0, J: 4},
			{N: 0.169894481433592e22, I: 0, J: 10},
			{N: 0.215780222509020e-26, I: 1, J: -10},
			{N: -0.320850551367334, I: 1, J: -1},
			{N: -0.382642448458610e17, I: 2, J: 6},
			{N: -0.275386077674421e-28, I: 3, J: -12},
			{N: -0.563199253391666e6, I: 3, J: 0},
			{N: -0.326068646279314e21, I: 3, J: 8},
			{N: 0.397949001553184e14, I: 4, J: 3},
			{N: 0.100824008584757e-6, I: 5, J: -6},
			{N: 0.162234569738433e5, I: 5, J: -2},
			{N: -0.432355225319745e11, I: 5, J: 1},
			{N: -0.592874245598610e12, I: 6, J: 1},
			{N: 0.133061647281106e1, I: 8, J: -6},
			{N: 0.157338197797544e7, I: 8, J: -3},
			{N: 0.258189614270853e14, I: 8, J: 1},
			{N: 0.262413209706358e25, I: 8, J: 8},
			{N: -0.920011937431142e-1, I: 10, J: -8},
			{N: 0.220213765905426e-2, I: 12, J: -10},
			{N: -0.110433759109547e2, I: 12, J: -8},
			{N: 0.847004870612087e7, I: 12, J: -5},
			{N: -0.592910695762536e9, I: 12, J: -4},
			{N: -0.183027173269660e-4, I: 14, J: -12},
			{N: 0.181339603516302, I: 14, J: -10},
			{N: -0.119228759669889e4, I: 14, J: -8},
			{N: 0.430867658061468e7, I: 14, J: -6},
		}),
	},
	subregion.VolumeY: {
		vStar: 0.0031, pStar: 22, tStar: 650, a: 0.996, b: 0.994,
		post: fourth,
		eq: series.New([]series.Term{
			{N: -0.525597995024633e-9, I: 0, J: -3},
			{N: 0.583441305228407e4, I: 0, J: 1},
			{N: -0.134778968457925e17, I: 0, J: 5},
			{N: 0.118973500934212e26, I: 0, J: 8},
			{N: -0.159096490904708e27, I: 1, J: 8},
			{N: -0.315839902302021e-6, I: 2, J: -4},
			{N: 0.496212197158239e3, I: 2, J: -1},
			{N: 0.327777227273171e19, I: 2, J: 4},
			{N: -0.527114657850696e22, I: 2, J: 5},
			{N: 0.210017506281863e-16, I: 3, J: -8},
			{N: 0.705106224399834e21, I: 3, J: 4},
			{N: -0.266713136106469e31, I: 3, J: 8},
			{N: -0.145370512554562e-7, I: 4, J: -6},
			{N: 0.149333917053130e28, I: 4, J: 6},
			{N: -0.149795620287641e8, I: 5, J: -2},
			{N: -0.381881906271100e16, I: 5, J: 1},
			{N: 0.724660165585797e-4, I: 8, J: -8},
			{N: -0.937808169550193e14, I: 8, J: -2},
			{N: 0.514411468376383e10, I: 10, J: -5},
			{N: -0.828198594040141e5, I: 12, J: -8},
		}),
	},
	subregion.VolumeZ: {
		vStar: 0.0038, pStar: 22, tStar: 650, a: 0.993, b: 0.994,
		post: fourth,
		eq: series.New([]series.Term{
			{N: 0.244007892290650e-10, I: -8, J: 3},
			{N: -0.463057430331242e7, I: -6, J: 6},
			{N: 0.728803274777712e10, I: -5, J: 6},
			{N: 0.327776302858856e16, I: -5, J: 8},
			{N: -0.110598170118409e10, I: -4, J: 5},
			{N: -0.323899915729957e13, I: -4, J: 6},
			{N: 0.923814007023245e16, I: -4, J: 8},
			{N: 0.842250080413712e-12, I: -3, J: -2},
			{N: 0.663221436245506e12, I: -3, J: 5},
			{N: -0.167170186672139e15, I: -3, J: 6},
			{N: 0.253749358701391e4, I: -2, J: 2},
			{N: -0.819731559610523e-20, I: -1, J: -6},
			{N: 0.328380587890663e12, I: 0, J: 3},
			{N: -0.625004791171543e8, I: 1, J: 1},
			{N: 0.803197957462023e21, I: 2, J: 6},
			{N: -0.204397011338353e-10, I: 3, J: -6},
			{N: -0.378391047055938e4, I: 3, J: -2},
			{N: 0.972876545938620e-2, I: 6, J: -6},
			{N: 0.154355721681459e2, I: 6, J: -5},
			{N: -0.373962862928643e4, I: 6, J: -4},
			{N: -0.682859011374572e11, I: 6, J: -1},
			{N: -0.248488015614543e-3, I: 8, J: -8},
			{N: 0.394536049497068e7, I: 8, J: -4},
		}),
	},
}
