package ast

// Walker is a Visitor that visits every child of a node through Self.
// Passes embed it, point Self at themselves and override only the nodes
// they handle; an override calls the embedded Walker method to descend.
type Walker struct {
	Self Visitor
}

func (w Walker) node(n Node) {
	if n != nil {
		n.Accept(w.Self)
	}
}

func (w Walker) expr(e Expr) {
	if e != nil {
		e.Accept(w.Self)
	}
}

func (w Walker) stmt(s Stmt) {
	if s != nil {
		s.Accept(w.Self)
	}
}

func (w Walker) stmts(list []Stmt) {
	for _, s := range list {
		w.stmt(s)
	}
}

func (w Walker) exprs(list []Expr) {
	for _, e := range list {
		w.expr(e)
	}
}

func (w Walker) params(list []*Param) {
	for _, p := range list {
		p.Accept(w.Self)
	}
}

func (w Walker) VisitUnit(n *Unit)     { w.stmts(n.Body) }
func (w Walker) VisitModule(n *Module) { w.stmts(n.Body) }
func (w Walker) VisitBlock(n *Block)   { w.stmts(n.Body) }

func (w Walker) VisitUseDecl(n *UseDecl)     {}
func (w Walker) VisitUseAlias(n *UseAlias)   {}
func (w Walker) VisitUseUnpack(n *UseUnpack) {}

func (w Walker) VisitClassDecl(n *ClassDecl)   { w.stmts(n.Members) }
func (w Walker) VisitTraitDecl(n *TraitDecl)   { w.stmts(n.Members) }
func (w Walker) VisitIfaceDecl(n *IfaceDecl)   { w.stmts(n.Members) }
func (w Walker) VisitTraitUse(n *TraitUse)     {}
func (w Walker) VisitNestedMods(n *NestedMods) { w.stmts(n.Members) }

func (w Walker) VisitVarDecl(n *VarDecl) {
	for _, item := range n.Items {
		item.Accept(w.Self)
	}
}

func (w Walker) VisitVarItem(n *VarItem) { w.expr(n.Init) }

func (w Walker) VisitEnumDecl(n *EnumDecl) {
	for _, item := range n.Items {
		item.Accept(w.Self)
	}
}

func (w Walker) VisitFnDecl(n *FnDecl)         { w.params(n.Params); w.node(n.Body) }
func (w Walker) VisitCtorDecl(n *CtorDecl)     { w.params(n.Params); w.node(n.Body) }
func (w Walker) VisitDtorDecl(n *DtorDecl)     { w.params(n.Params); w.node(n.Body) }
func (w Walker) VisitGetterDecl(n *GetterDecl) { w.params(n.Params); w.node(n.Body) }
func (w Walker) VisitSetterDecl(n *SetterDecl) { w.params(n.Params); w.node(n.Body) }
func (w Walker) VisitParam(n *Param)           { w.expr(n.Init) }

func (w Walker) VisitExprStmt(n *ExprStmt) { w.expr(n.Expr) }

func (w Walker) VisitIfStmt(n *IfStmt) {
	w.expr(n.Cond)
	w.stmt(n.Then)
	for _, elsif := range n.Elsifs {
		elsif.Accept(w.Self)
	}
	if n.Else != nil {
		n.Else.Accept(w.Self)
	}
}

func (w Walker) VisitElsifItem(n *ElsifItem) { w.expr(n.Cond); w.stmt(n.Body) }
func (w Walker) VisitElseItem(n *ElseItem)   { w.stmt(n.Body) }
func (w Walker) VisitWhileStmt(n *WhileStmt) { w.expr(n.Cond); w.stmt(n.Body) }
func (w Walker) VisitDoStmt(n *DoStmt)       { w.stmt(n.Body); w.expr(n.Cond) }

func (w Walker) VisitForStmt(n *ForStmt) {
	w.node(n.Init)
	w.expr(n.Cond)
	w.expr(n.Step)
	w.stmt(n.Body)
}

func (w Walker) VisitForInStmt(n *ForInStmt) {
	w.expr(n.Expr)
	if n.Key != nil {
		n.Key.Accept(w.Self)
	}
	n.Value.Accept(w.Self)
	w.stmt(n.Body)
}

func (w Walker) VisitSwitchStmt(n *SwitchStmt) {
	w.expr(n.Expr)
	for _, c := range n.Cases {
		c.Accept(w.Self)
	}
}

func (w Walker) VisitCaseItem(n *CaseItem) { w.expr(n.Expr); w.stmts(n.Body) }

func (w Walker) VisitTryStmt(n *TryStmt) {
	n.Body.Accept(w.Self)
	for _, c := range n.Catches {
		c.Accept(w.Self)
	}
	if n.Finally != nil {
		n.Finally.Accept(w.Self)
	}
}

func (w Walker) VisitCatchItem(n *CatchItem)       { n.Body.Accept(w.Self) }
func (w Walker) VisitReturnStmt(n *ReturnStmt)     { w.expr(n.Expr) }
func (w Walker) VisitThrowStmt(n *ThrowStmt)       { w.expr(n.Expr) }
func (w Walker) VisitBreakStmt(n *BreakStmt)       {}
func (w Walker) VisitContinueStmt(n *ContinueStmt) {}
func (w Walker) VisitPrintStmt(n *PrintStmt)       { w.exprs(n.Args) }

func (w Walker) VisitName(n *Name)           {}
func (w Walker) VisitIdent(n *Ident)         {}
func (w Walker) VisitStrLit(n *StrLit)       {}
func (w Walker) VisitRegexpLit(n *RegexpLit) {}
func (w Walker) VisitIntLit(n *IntLit)       {}
func (w Walker) VisitFloatLit(n *FloatLit)   {}
func (w Walker) VisitBoolLit(n *BoolLit)     {}
func (w Walker) VisitNullLit(n *NullLit)     {}
func (w Walker) VisitArrLit(n *ArrLit)       { w.exprs(n.Items) }

func (w Walker) VisitObjLit(n *ObjLit) {
	for _, p := range n.Pairs {
		p.Accept(w.Self)
	}
}

func (w Walker) VisitObjPair(n *ObjPair)       { w.expr(n.Key); w.expr(n.Value) }
func (w Walker) VisitTupleExpr(n *TupleExpr)   { w.exprs(n.Items) }
func (w Walker) VisitUnaryExpr(n *UnaryExpr)   { w.expr(n.Expr) }
func (w Walker) VisitBinExpr(n *BinExpr)       { w.expr(n.Left); w.expr(n.Right) }
func (w Walker) VisitAssignExpr(n *AssignExpr) { w.expr(n.Left); w.expr(n.Right) }
func (w Walker) VisitUpdateExpr(n *UpdateExpr) { w.expr(n.Expr) }
func (w Walker) VisitCastExpr(n *CastExpr)     { w.expr(n.Expr) }

func (w Walker) VisitCondExpr(n *CondExpr) {
	w.expr(n.Test)
	w.expr(n.Then)
	w.expr(n.Else)
}

func (w Walker) VisitMemberExpr(n *MemberExpr) { w.expr(n.Object); w.expr(n.Prop) }
func (w Walker) VisitOffsetExpr(n *OffsetExpr) { w.expr(n.Object); w.expr(n.Offset) }
func (w Walker) VisitCallExpr(n *CallExpr)     { w.expr(n.Callee); w.exprs(n.Args) }
func (w Walker) VisitNewExpr(n *NewExpr)       { w.expr(n.Class); w.exprs(n.Args) }
func (w Walker) VisitFnExpr(n *FnExpr)         { w.params(n.Params); w.node(n.Body) }
func (w Walker) VisitThisExpr(n *ThisExpr)     {}
func (w Walker) VisitSuperExpr(n *SuperExpr)   {}
func (w Walker) VisitParenExpr(n *ParenExpr)   { w.expr(n.Expr) }

// Inspect calls fn in pre-order for root and every node Walker descends
// into from it. Returning false skips the node's children.
func Inspect(root Node, fn func(Node) bool) {
	root.Accept(&inspector{fn: fn})
}
