package ast

type inspector struct {
	fn func(Node) bool
}

func (i *inspector) walk() Walker { return Walker{Self: i} }

func (i *inspector) VisitUnit(n *Unit) {
	if i.fn(n) {
		i.walk().VisitUnit(n)
	}
}

func (i *inspector) VisitModule(n *Module) {
	if i.fn(n) {
		i.walk().VisitModule(n)
	}
}

func (i *inspector) VisitBlock(n *Block) {
	if i.fn(n) {
		i.walk().VisitBlock(n)
	}
}

func (i *inspector) VisitUseDecl(n *UseDecl) {
	if i.fn(n) {
		i.walk().VisitUseDecl(n)
	}
}

func (i *inspector) VisitUseAlias(n *UseAlias) {
	if i.fn(n) {
		i.walk().VisitUseAlias(n)
	}
}

func (i *inspector) VisitUseUnpack(n *UseUnpack) {
	if i.fn(n) {
		i.walk().VisitUseUnpack(n)
	}
}

func (i *inspector) VisitClassDecl(n *ClassDecl) {
	if i.fn(n) {
		i.walk().VisitClassDecl(n)
	}
}

func (i *inspector) VisitTraitDecl(n *TraitDecl) {
	if i.fn(n) {
		i.walk().VisitTraitDecl(n)
	}
}

func (i *inspector) VisitIfaceDecl(n *IfaceDecl) {
	if i.fn(n) {
		i.walk().VisitIfaceDecl(n)
	}
}

func (i *inspector) VisitTraitUse(n *TraitUse) {
	if i.fn(n) {
		i.walk().VisitTraitUse(n)
	}
}

func (i *inspector) VisitNestedMods(n *NestedMods) {
	if i.fn(n) {
		i.walk().VisitNestedMods(n)
	}
}

func (i *inspector) VisitVarDecl(n *VarDecl) {
	if i.fn(n) {
		i.walk().VisitVarDecl(n)
	}
}

func (i *inspector) VisitVarItem(n *VarItem) {
	if i.fn(n) {
		i.walk().VisitVarItem(n)
	}
}

func (i *inspector) VisitEnumDecl(n *EnumDecl) {
	if i.fn(n) {
		i.walk().VisitEnumDecl(n)
	}
}

func (i *inspector) VisitFnDecl(n *FnDecl) {
	if i.fn(n) {
		i.walk().VisitFnDecl(n)
	}
}

func (i *inspector) VisitCtorDecl(n *CtorDecl) {
	if i.fn(n) {
		i.walk().VisitCtorDecl(n)
	}
}

func (i *inspector) VisitDtorDecl(n *DtorDecl) {
	if i.fn(n) {
		i.walk().VisitDtorDecl(n)
	}
}

func (i *inspector) VisitGetterDecl(n *GetterDecl) {
	if i.fn(n) {
		i.walk().VisitGetterDecl(n)
	}
}

func (i *inspector) VisitSetterDecl(n *SetterDecl) {
	if i.fn(n) {
		i.walk().VisitSetterDecl(n)
	}
}

func (i *inspector) VisitParam(n *Param) {
	if i.fn(n) {
		i.walk().VisitParam(n)
	}
}

func (i *inspector) VisitExprStmt(n *ExprStmt) {
	if i.fn(n) {
		i.walk().VisitExprStmt(n)
	}
}

func (i *inspector) VisitIfStmt(n *IfStmt) {
	if i.fn(n) {
		i.walk().VisitIfStmt(n)
	}
}

func (i *inspector) VisitElsifItem(n *ElsifItem) {
	if i.fn(n) {
		i.walk().VisitElsifItem(n)
	}
}

func (i *inspector) VisitElseItem(n *ElseItem) {
	if i.fn(n) {
		i.walk().VisitElseItem(n)
	}
}

func (i *inspector) VisitWhileStmt(n *WhileStmt) {
	if i.fn(n) {
		i.walk().VisitWhileStmt(n)
	}
}

func (i *inspector) VisitDoStmt(n *DoStmt) {
	if i.fn(n) {
		i.walk().VisitDoStmt(n)
	}
}

func (i *inspector) VisitForStmt(n *ForStmt) {
	if i.fn(n) {
		i.walk().VisitForStmt(n)
	}
}

func (i *inspector) VisitForInStmt(n *ForInStmt) {
	if i.fn(n) {
		i.walk().VisitForInStmt(n)
	}
}

func (i *inspector) VisitSwitchStmt(n *SwitchStmt) {
	if i.fn(n) {
		i.walk().VisitSwitchStmt(n)
	}
}

func (i *inspector) VisitCaseItem(n *CaseItem) {
	if i.fn(n) {
		i.walk().VisitCaseItem(n)
	}
}

func (i *inspector) VisitTryStmt(n *TryStmt) {
	if i.fn(n) {
		i.walk().VisitTryStmt(n)
	}
}

func (i *inspector) VisitCatchItem(n *CatchItem) {
	if i.fn(n) {
		i.walk().VisitCatchItem(n)
	}
}

func (i *inspector) VisitReturnStmt(n *ReturnStmt) {
	if i.fn(n) {
		i.walk().VisitReturnStmt(n)
	}
}

func (i *inspector) VisitThrowStmt(n *ThrowStmt) {
	if i.fn(n) {
		i.walk().VisitThrowStmt(n)
	}
}

func (i *inspector) VisitBreakStmt(n *BreakStmt) {
	if i.fn(n) {
		i.walk().VisitBreakStmt(n)
	}
}

func (i *inspector) VisitContinueStmt(n *ContinueStmt) {
	if i.fn(n) {
		i.walk().VisitContinueStmt(n)
	}
}

func (i *inspector) VisitPrintStmt(n *PrintStmt) {
	if i.fn(n) {
		i.walk().VisitPrintStmt(n)
	}
}

func (i *inspector) VisitName(n *Name) {
	if i.fn(n) {
		i.walk().VisitName(n)
	}
}

func (i *inspector) VisitIdent(n *Ident) {
	if i.fn(n) {
		i.walk().VisitIdent(n)
	}
}

func (i *inspector) VisitStrLit(n *StrLit) {
	if i.fn(n) {
		i.walk().VisitStrLit(n)
	}
}

func (i *inspector) VisitRegexpLit(n *RegexpLit) {
	if i.fn(n) {
		i.walk().VisitRegexpLit(n)
	}
}

func (i *inspector) VisitIntLit(n *IntLit) {
	if i.fn(n) {
		i.walk().VisitIntLit(n)
	}
}

func (i *inspector) VisitFloatLit(n *FloatLit) {
	if i.fn(n) {
		i.walk().VisitFloatLit(n)
	}
}

func (i *inspector) VisitBoolLit(n *BoolLit) {
	if i.fn(n) {
		i.walk().VisitBoolLit(n)
	}
}

func (i *inspector) VisitNullLit(n *NullLit) {
	if i.fn(n) {
		i.walk().VisitNullLit(n)
	}
}

func (i *inspector) VisitArrLit(n *ArrLit) {
	if i.fn(n) {
		i.walk().VisitArrLit(n)
	}
}

func (i *inspector) VisitObjLit(n *ObjLit) {
	if i.fn(n) {
		i.walk().VisitObjLit(n)
	}
}

func (i *inspector) VisitObjPair(n *ObjPair) {
	if i.fn(n) {
		i.walk().VisitObjPair(n)
	}
}

func (i *inspector) VisitTupleExpr(n *TupleExpr) {
	if i.fn(n) {
		i.walk().VisitTupleExpr(n)
	}
}

func (i *inspector) VisitUnaryExpr(n *UnaryExpr) {
	if i.fn(n) {
		i.walk().VisitUnaryExpr(n)
	}
}

func (i *inspector) VisitBinExpr(n *BinExpr) {
	if i.fn(n) {
		i.walk().VisitBinExpr(n)
	}
}

func (i *inspector) VisitAssignExpr(n *AssignExpr) {
	if i.fn(n) {
		i.walk().VisitAssignExpr(n)
	}
}

func (i *inspector) VisitUpdateExpr(n *UpdateExpr) {
	if i.fn(n) {
		i.walk().VisitUpdateExpr(n)
	}
}

func (i *inspector) VisitCastExpr(n *CastExpr) {
	if i.fn(n) {
		i.walk().VisitCastExpr(n)
	}
}

func (i *inspector) VisitCondExpr(n *CondExpr) {
	if i.fn(n) {
		i.walk().VisitCondExpr(n)
	}
}

func (i *inspector) VisitMemberExpr(n *MemberExpr) {
	if i.fn(n) {
		i.walk().VisitMemberExpr(n)
	}
}

func (i *inspector) VisitOffsetExpr(n *OffsetExpr) {
	if i.fn(n) {
		i.walk().VisitOffsetExpr(n)
	}
}

func (i *inspector) VisitCallExpr(n *CallExpr) {
	if i.fn(n) {
		i.walk().VisitCallExpr(n)
	}
}

func (i *inspector) VisitNewExpr(n *NewExpr) {
	if i.fn(n) {
		i.walk().VisitNewExpr(n)
	}
}

func (i *inspector) VisitFnExpr(n *FnExpr) {
	if i.fn(n) {
		i.walk().VisitFnExpr(n)
	}
}

func (i *inspector) VisitThisExpr(n *ThisExpr) {
	if i.fn(n) {
		i.walk().VisitThisExpr(n)
	}
}

func (i *inspector) VisitSuperExpr(n *SuperExpr) {
	if i.fn(n) {
		i.walk().VisitSuperExpr(n)
	}
}

func (i *inspector) VisitParenExpr(n *ParenExpr) {
	if i.fn(n) {
		i.walk().VisitParenExpr(n)
	}
}
