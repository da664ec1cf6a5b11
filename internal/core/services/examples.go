package services

import "github.com/custodia-labs/chemeq-cli/internal/core/domain"

// exampleReactions are offered by the examples list. They range from
// simple syntheses to redox reactions with nested groups.
var exampleReactions = []domain.ExampleReaction{
	{Name: "Gold in aqua regia", Equation: "Au + HCl + HNO3 -> HAuCl4 + NO + H2O"},
	{Name: "Barium hydroxide neutralisation", Equation: "Ba(OH)2 + H2SO4 -> BaSO4 + H2O"},
	{Name: "Propane combustion", Equation: "C3H8 + O2 -> CO2 + H2O"},
	{Name: "Heavy water", Equation: "D2 + O2 -> D2O"},
	{Name: "Erbium oxide in acid", Equation: "Er2O3 + HCl -> ErCl3 + H2O"},
	{Name: "Magnetite", Equation: "Fe + O2 -> Fe3O4"},
	{Name: "Germane combustion", Equation: "GeH4 + O2 -> GeO2 + H2O"},
	{Name: "Water synthesis", Equation: "H2 + O2 -> H2O"},
	{Name: "Iodometric titration", Equation: "I2 + Na2S2O3 -> NaI + Na2S4O6"},
	{Name: "Chlorate decomposition", Equation: "KClO3 -> KCl + O2"},
	{Name: "Lithium in water", Equation: "Li + H2O -> LiOH + H2"},
	{Name: "Magnesium in acid", Equation: "Mg + HCl -> MgCl2 + H2"},
	{Name: "Ostwald process", Equation: "NH3 + O2 -> NO + H2O"},
	{Name: "Ozone decomposition", Equation: "O3 -> O2"},
	{Name: "Phosphorus combustion", Equation: "P4 + O2 -> P4O10"},
	{Name: "Rubidium in water", Equation: "Rb + H2O -> RbOH + H2"},
	{Name: "Sulfur combustion", Equation: "S8 + O2 -> SO2"},
	{Name: "Chloride process", Equation: "TiO2 + C + Cl2 -> TiCl4 + CO"},
	{Name: "Uranium hexafluoride hydrolysis", Equation: "UF6 + H2O -> UO2F2 + HF"},
	{Name: "Vanadium oxychloride", Equation: "V2O5 + HCl -> VOCl3 + H2O"},
	{Name: "Tungsten reduction", Equation: "WO3 + H2 -> W + H2O"},
	{Name: "Xenon hexafluoride hydrolysis", Equation: "XeF6 + H2O -> XeO3 + HF"},
	{Name: "Yttrium nitrate", Equation: "Y2O3 + HNO3 -> Y(NO3)3 + H2O"},
	{Name: "Zinc in acid", Equation: "Zn + HCl -> ZnCl2 + H2"},
	{Name: "Permanganate and hydrochloric acid", Equation: "KMnO4 + HCl -> KCl + MnCl2 + H2O + Cl2"},
	{Name: "Phosphorus from apatite", Equation: "Ca3(PO4)2 + SiO2 + C -> CaSiO3 + P4 + CO"},
	{Name: "Ammonium dichromate volcano", Equation: "(NH4)2Cr2O7 -> Cr2O3 + N2 + H2O"},
}
