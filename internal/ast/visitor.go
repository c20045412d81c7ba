package ast

// Visitor has one method per node type. Every pass implements all of
// them, usually by embedding Walker.
type Visitor interface {
	VisitUnit(n *Unit)
	VisitModule(n *Module)
	VisitBlock(n *Block)

	// declarations
	VisitUseDecl(n *UseDecl)
	VisitUseAlias(n *UseAlias)
	VisitUseUnpack(n *UseUnpack)
	VisitClassDecl(n *ClassDecl)
	VisitTraitDecl(n *TraitDecl)
	VisitIfaceDecl(n *IfaceDecl)
	VisitTraitUse(n *TraitUse)
	VisitNestedMods(n *NestedMods)
	VisitVarDecl(n *VarDecl)
	VisitVarItem(n *VarItem)
	VisitEnumDecl(n *EnumDecl)
	VisitFnDecl(n *FnDecl)
	VisitCtorDecl(n *CtorDecl)
	VisitDtorDecl(n *DtorDecl)
	VisitGetterDecl(n *GetterDecl)
	VisitSetterDecl(n *SetterDecl)
	VisitParam(n *Param)

	// statements
	VisitExprStmt(n *ExprStmt)
	VisitIfStmt(n *IfStmt)
	VisitElsifItem(n *ElsifItem)
	VisitElseItem(n *ElseItem)
	VisitWhileStmt(n *WhileStmt)
	VisitDoStmt(n *DoStmt)
	VisitForStmt(n *ForStmt)
	VisitForInStmt(n *ForInStmt)
	VisitSwitchStmt(n *SwitchStmt)
	VisitCaseItem(n *CaseItem)
	VisitTryStmt(n *TryStmt)
	VisitCatchItem(n *CatchItem)
	VisitReturnStmt(n *ReturnStmt)
	VisitThrowStmt(n *ThrowStmt)
	VisitBreakStmt(n *BreakStmt)
	VisitContinueStmt(n *ContinueStmt)
	VisitPrintStmt(n *PrintStmt)

	// expressions
	VisitName(n *Name)
	VisitIdent(n *Ident)
	VisitStrLit(n *StrLit)
	VisitRegexpLit(n *RegexpLit)
	VisitIntLit(n *IntLit)
	VisitFloatLit(n *FloatLit)
	VisitBoolLit(n *BoolLit)
	VisitNullLit(n *NullLit)
	VisitArrLit(n *ArrLit)
	VisitObjLit(n *ObjLit)
	VisitObjPair(n *ObjPair)
	VisitTupleExpr(n *TupleExpr)
	VisitUnaryExpr(n *UnaryExpr)
	VisitBinExpr(n *BinExpr)
	VisitAssignExpr(n *AssignExpr)
	VisitUpdateExpr(n *UpdateExpr)
	VisitCastExpr(n *CastExpr)
	VisitCondExpr(n *CondExpr)
	VisitMemberExpr(n *MemberExpr)
	VisitOffsetExpr(n *OffsetExpr)
	VisitCallExpr(n *CallExpr)
	VisitNewExpr(n *NewExpr)
	VisitFnExpr(n *FnExpr)
	VisitThisExpr(n *ThisExpr)
	VisitSuperExpr(n *SuperExpr)
	VisitParenExpr(n *ParenExpr)
}
